package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carry-ads/internal/core/port"
)

// StockRepository implements port.StockRepository using pgxpool.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository returns a new repository instance.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

// ListStocks returns every support with its summed allocation totals,
// most recently updated first.
func (r *StockRepository) ListStocks(ctx context.Context) ([]port.StockOverview, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.name, s.price, COALESCE(s.image_name, ''), s.updated_at,
			COALESCE(SUM(cs.allocated), 0),
			COALESCE(SUM(cs.distributed), 0)
		FROM supports s
		LEFT JOIN campaign_supports cs ON cs.support_id = s.id
		GROUP BY s.id
		ORDER BY s.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.StockOverview, error) {
		var so port.StockOverview
		err := row.Scan(&so.ID, &so.Name, &so.Price, &so.ImageName, &so.UpdatedAt, &so.Allocated, &so.Distributed)
		return so, err
	})
}

// UpdateStock renames and reprices a support.
func (r *StockRepository) UpdateStock(ctx context.Context, id int64, name string, price int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE supports SET name = $1, price = $2, updated_at = now() WHERE id = $3`,
		name, price, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: support", port.ErrNotFound)
	}
	return nil
}

// DeleteStock removes a support and its allocation rows in one
// transaction.
func (r *StockRepository) DeleteStock(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	_, err = tx.Exec(ctx, `DELETE FROM campaign_supports WHERE support_id = $1`, id)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM supports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("%w: support", port.ErrNotFound)
		return err
	}
	return nil
}

// CreateDelivery records a manual hand-out of quantity units against
// the support's campaign allocation. The allocation row is locked so
// the invariant check and write serialize with distributor reports on
// the same row.
func (r *StockRepository) CreateDelivery(ctx context.Context, supportID int64, quantity int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var (
		campaignID  int64
		allocated   int
		distributed int
	)
	err = tx.QueryRow(ctx, `
		SELECT campaign_id, allocated, distributed
		FROM campaign_supports
		WHERE support_id = $1
		LIMIT 1
		FOR UPDATE`,
		supportID).Scan(&campaignID, &allocated, &distributed)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: no campaign allocation for support", port.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}

	if distributed+quantity > allocated {
		err = fmt.Errorf("%w: %d units remaining", port.ErrStockExceeded, allocated-distributed)
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaign_supports SET distributed = distributed + $1 WHERE campaign_id = $2 AND support_id = $3`,
		quantity, campaignID, supportID)
	return err
}

// SupportDistribution returns per-support allocation totals, most
// distributed first.
func (r *StockRepository) SupportDistribution(ctx context.Context) ([]port.SupportTotals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.name, COALESCE(SUM(cs.allocated), 0), COALESCE(SUM(cs.distributed), 0)
		FROM campaign_supports cs
		JOIN supports s ON s.id = cs.support_id
		GROUP BY s.name
		ORDER BY SUM(cs.distributed) DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SupportTotals, error) {
		var st port.SupportTotals
		err := row.Scan(&st.SupportName, &st.Allocated, &st.Distributed)
		return st, err
	})
}
