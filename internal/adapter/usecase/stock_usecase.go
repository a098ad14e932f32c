package usecase

import (
	"context"
	"fmt"

	"carry-ads/internal/core/port"
)

// StockUseCase implements admin stock management over the stock
// repository.
type StockUseCase struct {
	repo port.StockRepository
}

// NewStockUseCase creates the admin stock usecase.
func NewStockUseCase(repo port.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// ListStocks returns every support with summed allocation totals.
func (u *StockUseCase) ListStocks(ctx context.Context) ([]port.StockOverview, error) {
	return u.repo.ListStocks(ctx)
}

// UpdateStock renames and reprices a support.
func (u *StockUseCase) UpdateStock(ctx context.Context, id int64, name string, price int64) error {
	if name == "" || price <= 0 {
		return fmt.Errorf("%w: a name and a positive price are required", port.ErrValidation)
	}
	return u.repo.UpdateStock(ctx, id, name, price)
}

// DeleteStock removes a support and its allocation rows.
func (u *StockUseCase) DeleteStock(ctx context.Context, id int64) error {
	return u.repo.DeleteStock(ctx, id)
}

// CreateDelivery records a manual hand-out of support units against a
// campaign allocation.
func (u *StockUseCase) CreateDelivery(ctx context.Context, supportID int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", port.ErrValidation)
	}
	return u.repo.CreateDelivery(ctx, supportID, quantity)
}

// SupportDistribution returns per-support allocation totals.
func (u *StockUseCase) SupportDistribution(ctx context.Context) ([]port.SupportTotals, error) {
	return u.repo.SupportDistribution(ctx)
}
