package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. A campaign is
// created in Draft, becomes Active when a distributor accepts it and
// Completed when every allocated support unit has been distributed.
// Cancelled is reachable only through administrative action.
type CampaignStatus int

const (
	CampaignDraft CampaignStatus = iota
	CampaignActive
	CampaignCompleted
	CampaignCancelled
)

// String returns the label used by the dashboard for this status.
func (s CampaignStatus) String() string {
	switch s {
	case CampaignDraft:
		return "Pending"
	case CampaignActive:
		return "Ongoing"
	case CampaignCompleted:
		return "Completed"
	case CampaignCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Campaign represents an advertiser campaign. Prices are stored in
// integer millimes. Regions is the ordered list of city names the
// campaign targets; membership is tested case-insensitively.
type Campaign struct {
	ID           int64
	CustomerID   int64
	Name         string
	Description  string
	Status       CampaignStatus
	Regions      []string
	NeedDesigner bool
	ImageName    string
	TotalPrice   int64
	StartDate    time.Time
	CreatedAt    time.Time
}
