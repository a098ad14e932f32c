package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carry-ads/internal/core/domain"
)

// DistributionUseCase is the distributor-facing port of the stock
// allocation engine.
type DistributionUseCase interface {
	// ListEligiblePending returns draft campaigns targeting the
	// distributor's city that the distributor has not answered yet.
	ListEligiblePending(ctx context.Context, userID int64) ([]PendingCampaign, error)

	// AcceptCampaign creates an active distribution for the campaign
	// and moves the campaign to Active. The first distributor to commit
	// wins; later attempts fail as not pending.
	AcceptCampaign(ctx context.Context, userID, campaignID int64) error

	// DeclineCampaign records a declined distribution. The campaign
	// stays visible to other distributors.
	DeclineCampaign(ctx context.Context, userID, campaignID int64) error

	// DistributeBags reports quantity bags handed out against the
	// distribution and returns the remaining quantity. On exhaustion the
	// distribution completes, and the campaign completes once every one
	// of its distributions is exhausted.
	DistributeBags(ctx context.Context, userID, distributionID int64, quantity int) (int, error)

	// ListActive returns the distributor's ongoing distributions.
	ListActive(ctx context.Context, userID int64) ([]DistributionView, error)

	// ListMine returns the distributor's ongoing and completed
	// distributions.
	ListMine(ctx context.Context, userID int64) ([]DistributionView, error)

	// Stats returns the distributor's aggregate counters.
	Stats(ctx context.Context, userID int64) (*DistributorStats, error)

	// ListPayments returns payment lines for completed campaigns the
	// distributor fulfilled.
	ListPayments(ctx context.Context, userID int64) ([]Payment, error)

	// GetPayment returns one payment line by campaign id.
	GetPayment(ctx context.Context, userID, campaignID int64) (*Payment, error)
}

// PendingCampaign is a draft campaign offered to a distributor.
type PendingCampaign struct {
	ID          int64
	Name        string
	ClientName  string
	Bags        int
	Description string
	ImageName   string
}

// DistributionView is the distributor dashboard row for one
// distribution.
type DistributionView struct {
	ID           int64
	CampaignName string
	ClientName   string
	Description  string
	ImageName    string
	Status       domain.DistributionStatus
	Allocated    int
	Distributed  int
	StartDate    *time.Time
	EndDate      *time.Time
}

// Remaining returns the number of bags still to distribute.
func (v DistributionView) Remaining() int {
	return v.Allocated - v.Distributed
}

// DistributorStats aggregates a distributor's ledger. Revenue is the
// estimated payout for completed campaigns.
type DistributorStats struct {
	BagsAllocated   int
	BagsDistributed int
	ActiveCampaigns int
	Revenue         decimal.Decimal
}

// DistributorStatsRow is the raw repository projection behind
// DistributorStats; RevenueBags counts distributed bags on completed
// campaigns only.
type DistributorStatsRow struct {
	BagsAllocated   int
	BagsDistributed int
	ActiveCampaigns int
	RevenueBags     int
}

// Payment is a payout line for a completed campaign.
type Payment struct {
	CampaignID   int64
	Number       string
	CampaignName string
	IssueDate    time.Time
	Amount       decimal.Decimal
}

// PaymentRow is the raw repository projection a Payment is built from.
type PaymentRow struct {
	CampaignID  int64
	Name        string
	CreatedAt   time.Time
	Distributed int
}
