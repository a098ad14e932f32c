package domain

import "time"

// DistributionStatus is the lifecycle state of a distribution ledger
// entry. Pending is explicit here even though no row is persisted for a
// campaign a distributor has not answered yet; it keeps the zero value
// meaningful instead of conflating "no row" with "undecided".
type DistributionStatus int

const (
	DistributionPending DistributionStatus = iota
	DistributionActive
	DistributionCompleted
	DistributionDeclined
)

func (s DistributionStatus) String() string {
	switch s {
	case DistributionPending:
		return "Pending"
	case DistributionActive:
		return "Ongoing"
	case DistributionCompleted:
		return "Completed"
	case DistributionDeclined:
		return "Declined"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition can leave this state.
func (s DistributionStatus) Terminal() bool {
	return s == DistributionCompleted || s == DistributionDeclined
}

// Distribution is a distributor's commitment to fulfil a campaign's
// allocation. Allocated snapshots the allocation quantity at acceptance
// time; progress is read from the shared SupportAllocation row.
type Distribution struct {
	ID            int64
	CampaignID    int64
	DistributorID int64
	SupportID     int64
	Allocated     int
	Status        DistributionStatus
	StartDate     *time.Time
	EndDate       *time.Time
}
