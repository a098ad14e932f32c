package port

import (
	"context"

	"carry-ads/internal/core/domain"
)

// DistributionRepository is the outbound persistence port for the
// distributor side of the engine. AcceptCampaign, DeclineCampaign and
// DistributeBags carry the transactional invariant enforcement:
// DistributeBags must read the allocation row under an exclusive lock,
// validate and write inside one transaction.
type DistributionRepository interface {
	// GetDistributorByUserID returns the distributor profile behind a
	// user account, or nil, nil when absent.
	GetDistributorByUserID(ctx context.Context, userID int64) (*domain.Distributor, error)

	// ListEligiblePending returns draft campaigns whose region list
	// contains city (case-insensitively) and for which the distributor
	// has no distribution row of any status.
	ListEligiblePending(ctx context.Context, distributorID int64, city string) ([]PendingCampaign, error)

	// AcceptCampaign locks the campaign row, re-checks it is Draft,
	// inserts an active distribution snapshotting the allocation
	// quantity and moves the campaign to Active. Returns ErrNotFound
	// when the campaign is absent or no longer Draft, ErrNoSupport when
	// it has no allocation, ErrAlreadyDecided on a duplicate accept.
	AcceptCampaign(ctx context.Context, campaignID, distributorID int64) error

	// DeclineCampaign inserts a declined distribution; the campaign is
	// left untouched. Repeated declines are not deduplicated.
	DeclineCampaign(ctx context.Context, campaignID, distributorID int64) error

	// DistributeBags adds quantity to the allocation's distributed
	// count under a row lock and returns the remaining quantity. On
	// exhaustion it completes the distribution and, when all of the
	// campaign's distributions are exhausted, the campaign. Ownership is
	// checked through the distributor's user id.
	DistributeBags(ctx context.Context, distributionID, userID int64, quantity int) (int, error)

	// ListByDistributorUser returns the distributor's distributions
	// restricted to the given statuses.
	ListByDistributorUser(ctx context.Context, userID int64, statuses []domain.DistributionStatus) ([]DistributionView, error)

	// StatsByDistributor returns the distributor's aggregate counters.
	StatsByDistributor(ctx context.Context, distributorID int64) (*DistributorStatsRow, error)

	// ListPaymentRows returns raw payment projections for completed
	// campaigns the user's distributor profile fulfilled.
	ListPaymentRows(ctx context.Context, userID int64) ([]PaymentRow, error)

	// GetPaymentRow returns one raw payment projection, or nil, nil
	// when the campaign is not completed or not the caller's.
	GetPaymentRow(ctx context.Context, userID, campaignID int64) (*PaymentRow, error)
}
