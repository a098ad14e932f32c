package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
)

// perBagFee is the distribution fee in dinars charged per distributed
// bag on completed campaigns.
var perBagFee = decimal.RequireFromString("0.5")

// CampaignUseCase implements the advertiser side of the stock
// allocation engine. It validates requests, resolves regions and
// delegates atomic persistence to the repository.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	regions port.RegionResolver
	visuals port.VisualStore
}

// NewCampaignUseCase creates the advertiser usecase.
func NewCampaignUseCase(repo port.CampaignRepository, regions port.RegionResolver, visuals port.VisualStore) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, regions: regions, visuals: visuals}
}

// CreateCampaign validates the request, resolves the targeted regions
// and inserts campaign, support and allocation in one transaction. The
// campaign starts in Draft with nothing distributed.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, userID int64, req port.CreateCampaignReq) (int64, error) {
	if req.Name == "" || req.StartDate.IsZero() {
		return 0, fmt.Errorf("%w: name and start date are required", port.ErrValidation)
	}
	if req.SupportName == "" || req.UnitPrice <= 0 || req.Quantity <= 0 {
		return 0, fmt.Errorf("%w: support name, a positive unit price and a positive quantity are required", port.ErrValidation)
	}
	if !req.NeedDesigner {
		if req.VisualName == "" {
			return 0, fmt.Errorf("%w: a visual is required when no designer is requested", port.ErrValidation)
		}
		ok, err := u.visuals.Exists(ctx, req.VisualName)
		if err != nil {
			return 0, fmt.Errorf("check visual: %w", err)
		}
		if !ok {
			return 0, fmt.Errorf("%w: visual %q not found on storage", port.ErrValidation, req.VisualName)
		}
	}

	customer, err := u.repo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if customer == nil {
		return 0, fmt.Errorf("%w: advertiser profile", port.ErrNotFound)
	}

	regions, err := u.regions.Resolve(ctx, req.DistributorIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve regions: %w", err)
	}

	campaign := domain.Campaign{
		CustomerID:   customer.ID,
		Name:         req.Name,
		Description:  req.Description,
		Status:       domain.CampaignDraft,
		Regions:      regions,
		NeedDesigner: req.NeedDesigner,
		ImageName:    req.VisualName,
		TotalPrice:   req.UnitPrice * int64(req.Quantity),
		StartDate:    req.StartDate,
	}
	support := domain.Support{
		Name:      req.SupportName,
		Price:     req.UnitPrice,
		ImageName: req.VisualName,
	}
	return u.repo.CreateCampaignWithAllocation(ctx, campaign, support, req.Quantity)
}

// ListAdvertiserCampaigns returns the advertiser's campaigns.
func (u *CampaignUseCase) ListAdvertiserCampaigns(ctx context.Context, userID int64) ([]port.AdvertiserCampaign, error) {
	return u.repo.ListByCustomerUser(ctx, userID)
}

// ListInvoices builds invoices for the advertiser's completed
// campaigns. The amount due is the per-bag fee times the distributed
// quantity.
func (u *CampaignUseCase) ListInvoices(ctx context.Context, userID int64) ([]port.Invoice, error) {
	rows, err := u.repo.ListInvoiceRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices := make([]port.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, port.Invoice{
			CampaignID:   row.CampaignID,
			Number:       invoiceNumber(row.CampaignID, row.CreatedAt),
			CampaignName: row.Name,
			IssueDate:    row.CreatedAt,
			Amount:       millimesToDinars(row.TotalPrice),
			AmountToPay:  perBagFee.Mul(decimal.NewFromInt(int64(row.Distributed))),
		})
	}
	return invoices, nil
}
