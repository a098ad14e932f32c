package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCustomerByUserID returns the advertiser profile behind a user id.
func (r *CampaignRepository) GetCustomerByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, company_name FROM customers WHERE user_id = $1`, userID).
		Scan(&c.ID, &c.UserID, &c.CompanyName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaignWithAllocation inserts the campaign, its region list,
// one support and one allocation row atomically. Any failure rolls back
// every insert.
func (r *CampaignRepository) CreateCampaignWithAllocation(ctx context.Context, c domain.Campaign, s domain.Support, quantity int) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var campaignID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO campaigns (customer_id, name, description, status, need_designer, image_name, total_price, start_date, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now())
		 RETURNING id`,
		c.CustomerID, c.Name, c.Description, int(domain.CampaignDraft), c.NeedDesigner, c.ImageName, c.TotalPrice, c.StartDate,
	).Scan(&campaignID)
	if err != nil {
		return 0, err
	}

	for i, region := range c.Regions {
		_, err = tx.Exec(ctx,
			`INSERT INTO campaign_regions (campaign_id, position, name) VALUES ($1,$2,$3)`,
			campaignID, i, region)
		if err != nil {
			return 0, err
		}
	}

	var supportID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO supports (name, price, image_name, created_at, updated_at)
		 VALUES ($1,$2,$3,now(),now())
		 RETURNING id`,
		s.Name, s.Price, s.ImageName,
	).Scan(&supportID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO campaign_supports (campaign_id, support_id, allocated, distributed)
		 VALUES ($1,$2,$3,0)`,
		campaignID, supportID, quantity)
	if err != nil {
		return 0, err
	}
	return campaignID, nil
}

// ListByCustomerUser returns the advertiser's campaigns with allocation
// progress and the usernames of assigned distributors.
func (r *CampaignRepository) ListByCustomerUser(ctx context.Context, userID int64) ([]port.AdvertiserCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			c.id,
			c.name,
			c.description,
			COALESCE(c.image_name, ''),
			c.status,
			c.total_price,
			COALESCE(MAX(cs.allocated), 0),
			COALESCE(MAX(cs.distributed), 0),
			MIN(d.start_date),
			MAX(d.end_date),
			COALESCE(array_agg(DISTINCT u.username) FILTER (WHERE u.username IS NOT NULL), '{}'::text[])
		FROM campaigns c
		LEFT JOIN campaign_supports cs ON cs.campaign_id = c.id
		LEFT JOIN distributions d ON d.campaign_id = c.id AND d.status IN ($2, $3)
		LEFT JOIN distributors dr ON dr.id = d.distributor_id
		LEFT JOIN users u ON u.id = dr.user_id
		JOIN customers cu ON cu.id = c.customer_id
		WHERE cu.user_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`,
		userID, int(domain.DistributionActive), int(domain.DistributionCompleted))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.AdvertiserCampaign, error) {
		var (
			ac     port.AdvertiserCampaign
			status int
		)
		err := row.Scan(&ac.ID, &ac.Name, &ac.Description, &ac.ImageName, &status,
			&ac.TotalPrice, &ac.Allocated, &ac.Distributed, &ac.StartDate, &ac.EndDate, &ac.Distributors)
		ac.Status = domain.CampaignStatus(status)
		return ac, err
	})
}

// ListInvoiceRows returns raw invoice projections for the advertiser's
// completed campaigns.
func (r *CampaignRepository) ListInvoiceRows(ctx context.Context, userID int64) ([]port.InvoiceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.created_at, c.total_price, COALESCE(SUM(cs.distributed), 0)
		FROM campaigns c
		JOIN customers cu ON cu.id = c.customer_id
		LEFT JOIN campaign_supports cs ON cs.campaign_id = c.id
		WHERE cu.user_id = $1 AND c.status = $2
		GROUP BY c.id
		ORDER BY c.created_at DESC`,
		userID, int(domain.CampaignCompleted))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.InvoiceRow, error) {
		var ir port.InvoiceRow
		err := row.Scan(&ir.CampaignID, &ir.Name, &ir.CreatedAt, &ir.TotalPrice, &ir.Distributed)
		return ir, err
	})
}
