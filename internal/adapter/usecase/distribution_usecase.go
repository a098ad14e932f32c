package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
)

// DistributionUseCase implements the distributor side of the stock
// allocation engine. The quantity invariants themselves are enforced by
// the repository inside row-locked transactions; this layer resolves
// the distributor profile, validates input and shapes results.
type DistributionUseCase struct {
	repo port.DistributionRepository
}

// NewDistributionUseCase creates the distributor usecase.
func NewDistributionUseCase(repo port.DistributionRepository) *DistributionUseCase {
	return &DistributionUseCase{repo: repo}
}

func (u *DistributionUseCase) distributor(ctx context.Context, userID int64) (*domain.Distributor, error) {
	d, err := u.repo.GetDistributorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: distributor profile", port.ErrNotFound)
	}
	return d, nil
}

// ListEligiblePending returns draft campaigns targeting the
// distributor's city that the distributor has not answered yet.
func (u *DistributionUseCase) ListEligiblePending(ctx context.Context, userID int64) ([]port.PendingCampaign, error) {
	d, err := u.distributor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListEligiblePending(ctx, d.ID, d.City)
}

// AcceptCampaign accepts a pending campaign on behalf of the
// distributor behind userID.
func (u *DistributionUseCase) AcceptCampaign(ctx context.Context, userID, campaignID int64) error {
	d, err := u.distributor(ctx, userID)
	if err != nil {
		return err
	}
	return u.repo.AcceptCampaign(ctx, campaignID, d.ID)
}

// DeclineCampaign declines a pending campaign on behalf of the
// distributor behind userID.
func (u *DistributionUseCase) DeclineCampaign(ctx context.Context, userID, campaignID int64) error {
	d, err := u.distributor(ctx, userID)
	if err != nil {
		return err
	}
	return u.repo.DeclineCampaign(ctx, campaignID, d.ID)
}

// DistributeBags reports quantity bags handed out against the
// distribution and returns the remaining quantity. A zero or negative
// quantity is rejected, never silently accepted.
func (u *DistributionUseCase) DistributeBags(ctx context.Context, userID, distributionID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be a positive integer", port.ErrValidation)
	}
	return u.repo.DistributeBags(ctx, distributionID, userID, quantity)
}

// ListActive returns the distributor's ongoing distributions.
func (u *DistributionUseCase) ListActive(ctx context.Context, userID int64) ([]port.DistributionView, error) {
	return u.repo.ListByDistributorUser(ctx, userID, []domain.DistributionStatus{domain.DistributionActive})
}

// ListMine returns the distributor's ongoing and completed
// distributions.
func (u *DistributionUseCase) ListMine(ctx context.Context, userID int64) ([]port.DistributionView, error) {
	return u.repo.ListByDistributorUser(ctx, userID, []domain.DistributionStatus{
		domain.DistributionActive,
		domain.DistributionCompleted,
	})
}

// Stats returns the distributor's aggregate counters with the
// estimated revenue for completed campaigns.
func (u *DistributionUseCase) Stats(ctx context.Context, userID int64) (*port.DistributorStats, error) {
	d, err := u.distributor(ctx, userID)
	if err != nil {
		return nil, err
	}
	row, err := u.repo.StatsByDistributor(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return &port.DistributorStats{
		BagsAllocated:   row.BagsAllocated,
		BagsDistributed: row.BagsDistributed,
		ActiveCampaigns: row.ActiveCampaigns,
		Revenue:         perBagFee.Mul(decimal.NewFromInt(int64(row.RevenueBags))),
	}, nil
}

// ListPayments returns payout lines for completed campaigns the
// distributor fulfilled.
func (u *DistributionUseCase) ListPayments(ctx context.Context, userID int64) ([]port.Payment, error) {
	rows, err := u.repo.ListPaymentRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments := make([]port.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, paymentFromRow(row))
	}
	return payments, nil
}

// GetPayment returns one payout line by campaign id.
func (u *DistributionUseCase) GetPayment(ctx context.Context, userID, campaignID int64) (*port.Payment, error) {
	row, err := u.repo.GetPaymentRow(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: payment", port.ErrNotFound)
	}
	p := paymentFromRow(*row)
	return &p, nil
}

func paymentFromRow(row port.PaymentRow) port.Payment {
	return port.Payment{
		CampaignID:   row.CampaignID,
		Number:       invoiceNumber(row.CampaignID, row.CreatedAt),
		CampaignName: row.Name,
		IssueDate:    row.CreatedAt,
		Amount:       perBagFee.Mul(decimal.NewFromInt(int64(row.Distributed))),
	}
}

// invoiceNumber formats the invoice reference shown on billing pages,
// e.g. INV-2026-000042.
func invoiceNumber(campaignID int64, issued time.Time) string {
	return fmt.Sprintf("INV-%d-%06d", issued.Year(), campaignID)
}

// millimesToDinars converts an integer millime amount to dinars.
func millimesToDinars(millimes int64) decimal.Decimal {
	return decimal.NewFromInt(millimes).Div(decimal.NewFromInt(1000))
}
