package port

import (
	"context"
	"time"
)

// StockUseCase is the admin-facing port over supports and their
// allocations.
type StockUseCase interface {
	// ListStocks returns every support with its summed allocation
	// totals.
	ListStocks(ctx context.Context) ([]StockOverview, error)

	// UpdateStock renames and reprices a support.
	UpdateStock(ctx context.Context, id int64, name string, price int64) error

	// DeleteStock removes a support and its allocation rows.
	DeleteStock(ctx context.Context, id int64) error

	// CreateDelivery records a manual hand-out of quantity units of a
	// support against its campaign allocation, under the same allocation
	// invariant as distributor reports.
	CreateDelivery(ctx context.Context, supportID int64, quantity int) error

	// SupportDistribution returns per-support allocation totals.
	SupportDistribution(ctx context.Context) ([]SupportTotals, error)
}

// StockOverview is the admin stock table row for one support.
type StockOverview struct {
	ID          int64
	Name        string
	Price       int64
	ImageName   string
	UpdatedAt   time.Time
	Allocated   int
	Distributed int
}

// SupportTotals aggregates allocations per support name.
type SupportTotals struct {
	SupportName string
	Allocated   int
	Distributed int
}
