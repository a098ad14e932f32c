package port

import "context"

// StockRepository is the outbound persistence port for admin stock
// management. CreateDelivery enforces the allocation invariant under
// the same row lock as distributor reports.
type StockRepository interface {
	ListStocks(ctx context.Context) ([]StockOverview, error)
	UpdateStock(ctx context.Context, id int64, name string, price int64) error
	DeleteStock(ctx context.Context, id int64) error
	CreateDelivery(ctx context.Context, supportID int64, quantity int) error
	SupportDistribution(ctx context.Context) ([]SupportTotals, error)
}
