package port

import (
	"context"

	"carry-ads/internal/core/domain"
)

// CampaignRepository is the outbound persistence port for the
// advertiser side. Implementations must be concurrency-safe and apply
// multi-row writes atomically. Lookups return nil, nil when no row
// matches.
type CampaignRepository interface {
	// GetCustomerByUserID returns the advertiser profile behind a user
	// account.
	GetCustomerByUserID(ctx context.Context, userID int64) (*domain.Customer, error)

	// CreateCampaignWithAllocation inserts the campaign, its region
	// list, one support and one allocation row in a single transaction.
	// Any failure rolls back all inserts.
	CreateCampaignWithAllocation(ctx context.Context, c domain.Campaign, s domain.Support, quantity int) (int64, error)

	// ListByCustomerUser returns the advertiser's campaigns with
	// allocation progress and assigned distributor names.
	ListByCustomerUser(ctx context.Context, userID int64) ([]AdvertiserCampaign, error)

	// ListInvoiceRows returns raw invoice projections for the
	// advertiser's completed campaigns.
	ListInvoiceRows(ctx context.Context, userID int64) ([]InvoiceRow, error)
}
