package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carry-ads/internal/core/domain"
)

// CampaignUseCase is the advertiser-facing port of the stock allocation
// engine. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// CreateCampaign validates the request, resolves the targeted
	// regions and atomically inserts the campaign, its support and the
	// support allocation. It returns the new campaign id.
	CreateCampaign(ctx context.Context, userID int64, req CreateCampaignReq) (int64, error)

	// ListAdvertiserCampaigns returns all campaigns owned by the
	// advertiser behind userID together with allocation progress.
	ListAdvertiserCampaigns(ctx context.Context, userID int64) ([]AdvertiserCampaign, error)

	// ListInvoices returns invoices for the advertiser's completed
	// campaigns.
	ListInvoices(ctx context.Context, userID int64) ([]Invoice, error)
}

// CreateCampaignReq carries the fields of a campaign creation request.
// DistributorIDs are the distributor identifiers selected in the
// creation form; they are resolved to region names by a RegionResolver.
// UnitPrice is in millimes.
type CreateCampaignReq struct {
	Name           string
	Description    string
	StartDate      time.Time
	DistributorIDs []int64
	SupportName    string
	UnitPrice      int64
	Quantity       int
	NeedDesigner   bool
	VisualName     string
}

// AdvertiserCampaign is the advertiser dashboard row for one campaign.
type AdvertiserCampaign struct {
	ID           int64
	Name         string
	Description  string
	ImageName    string
	Status       domain.CampaignStatus
	TotalPrice   int64
	Allocated    int
	Distributed  int
	StartDate    *time.Time
	EndDate      *time.Time
	Distributors []string
}

// Invoice is a billing line for a completed campaign. Amount is the
// campaign's total price; AmountToPay is the distribution fee owed,
// derived from the distributed quantity.
type Invoice struct {
	CampaignID   int64
	Number       string
	CampaignName string
	IssueDate    time.Time
	Amount       decimal.Decimal
	AmountToPay  decimal.Decimal
}

// InvoiceRow is the raw repository projection an Invoice is built from.
type InvoiceRow struct {
	CampaignID  int64
	Name        string
	CreatedAt   time.Time
	TotalPrice  int64
	Distributed int
}
