package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
)

const pgUniqueViolation = "23505"

// DistributionRepository implements port.DistributionRepository using
// pgxpool. Accept and distribute run inside transactions holding row
// locks so that concurrent distributor actions on the same campaign
// serialize instead of racing.
type DistributionRepository struct {
	pool *pgxpool.Pool
}

// NewDistributionRepository returns a new repository instance.
func NewDistributionRepository(pool *pgxpool.Pool) *DistributionRepository {
	return &DistributionRepository{pool: pool}
}

// GetDistributorByUserID returns the distributor profile behind a user
// id.
func (r *DistributionRepository) GetDistributorByUserID(ctx context.Context, userID int64) (*domain.Distributor, error) {
	var d domain.Distributor
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, city FROM distributors WHERE user_id = $1`, userID).
		Scan(&d.ID, &d.UserID, &d.City)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListEligiblePending returns draft campaigns targeting city for which
// the distributor holds no distribution row of any status. The city
// match is case-insensitive against the campaign's region list.
func (r *DistributionRepository) ListEligiblePending(ctx context.Context, distributorID int64, city string) ([]port.PendingCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			c.id,
			c.name,
			cu.company_name,
			COALESCE(SUM(cs.allocated), 0),
			c.description,
			COALESCE(c.image_name, '')
		FROM campaigns c
		JOIN customers cu ON cu.id = c.customer_id
		JOIN campaign_supports cs ON cs.campaign_id = c.id
		WHERE c.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM distributions d
			WHERE d.campaign_id = c.id AND d.distributor_id = $2
		  )
		  AND EXISTS (
			SELECT 1 FROM campaign_regions cr
			WHERE cr.campaign_id = c.id AND lower(cr.name) = lower($3)
		  )
		GROUP BY c.id, cu.company_name
		ORDER BY c.created_at DESC`,
		int(domain.CampaignDraft), distributorID, city)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.PendingCampaign, error) {
		var pc port.PendingCampaign
		err := row.Scan(&pc.ID, &pc.Name, &pc.ClientName, &pc.Bags, &pc.Description, &pc.ImageName)
		return pc, err
	})
}

// AcceptCampaign creates an active distribution and moves the campaign
// to Active. The campaign row is locked and its status re-checked
// inside the transaction, so of two racing distributors only the first
// to commit wins; the other sees the campaign as no longer pending.
func (r *DistributionRepository) AcceptCampaign(ctx context.Context, campaignID, distributorID int64) error {
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

	var id int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM campaigns WHERE id = $1 AND status = $2 FOR UPDATE`,
		campaignID, int(domain.CampaignDraft)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: campaign not found or not pending", port.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}

	var supportID int64
	var allocated int
	err = tx.QueryRow(ctx,
		`SELECT support_id, allocated FROM campaign_supports WHERE campaign_id = $1 LIMIT 1`,
		campaignID).Scan(&supportID, &allocated)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNoSupport
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO distributions (campaign_id, distributor_id, support_id, allocated, status, start_date)
		 VALUES ($1,$2,$3,$4,$5,now())`,
		campaignID, distributorID, supportID, allocated, int(domain.DistributionActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			err = port.ErrAlreadyDecided
		}
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET status = $1 WHERE id = $2`,
		int(domain.CampaignActive), campaignID)
	return err
}

// DeclineCampaign records a declined distribution with no allocation
// snapshot and no dates. The campaign status is untouched, so other
// distributors still see it. Repeated declines simply add rows.
func (r *DistributionRepository) DeclineCampaign(ctx context.Context, campaignID, distributorID int64) error {
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

	var id int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM campaigns WHERE id = $1 AND status = $2`,
		campaignID, int(domain.CampaignDraft)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: campaign not found or not pending", port.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}

	var supportID int64
	err = tx.QueryRow(ctx,
		`SELECT support_id FROM campaign_supports WHERE campaign_id = $1 LIMIT 1`,
		campaignID).Scan(&supportID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNoSupport
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO distributions (campaign_id, distributor_id, support_id, allocated, status)
		 VALUES ($1,$2,$3,0,$4)`,
		campaignID, distributorID, supportID, int(domain.DistributionDeclined))
	return err
}

// DistributeBags adds quantity to the allocation's distributed count.
// The allocation row is read FOR UPDATE so that concurrent reports
// against the same row serialize: read, validate and write all happen
// under the lock inside one transaction. On exhaustion the distribution
// completes; the campaign completes once allocated equals distributed
// summed over all its distributions. Returns the remaining quantity.
func (r *DistributionRepository) DistributeBags(ctx context.Context, distributionID, userID int64, quantity int) (remaining int, err error) {
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

	var (
		campaignID  int64
		supportID   int64
		allocated   int
		distributed int
	)
	err = tx.QueryRow(ctx, `
		SELECT d.campaign_id, d.support_id, d.allocated, cs.distributed
		FROM distributions d
		JOIN distributors dr ON dr.id = d.distributor_id
		JOIN campaign_supports cs ON cs.campaign_id = d.campaign_id AND cs.support_id = d.support_id
		WHERE d.id = $1 AND dr.user_id = $2
		FOR UPDATE OF cs`,
		distributionID, userID).Scan(&campaignID, &supportID, &allocated, &distributed)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: distribution not found or not owned", port.ErrNotFound)
		return 0, err
	}
	if err != nil {
		return 0, err
	}

	newDistributed := distributed + quantity
	if newDistributed > allocated {
		err = fmt.Errorf("%w: %d bags remaining", port.ErrStockExceeded, allocated-distributed)
		return 0, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaign_supports SET distributed = $1 WHERE campaign_id = $2 AND support_id = $3`,
		newDistributed, campaignID, supportID)
	if err != nil {
		return 0, err
	}

	if newDistributed == allocated {
		_, err = tx.Exec(ctx,
			`UPDATE distributions SET status = $1, end_date = now() WHERE id = $2`,
			int(domain.DistributionCompleted), distributionID)
		if err != nil {
			return 0, err
		}

		var totalAllocated, totalDistributed int
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(d.allocated), 0), COALESCE(SUM(cs.distributed), 0)
			FROM distributions d
			JOIN campaign_supports cs ON cs.campaign_id = d.campaign_id AND cs.support_id = d.support_id
			WHERE d.campaign_id = $1 AND d.status IN ($2, $3)`,
			campaignID, int(domain.DistributionActive), int(domain.DistributionCompleted)).
			Scan(&totalAllocated, &totalDistributed)
		if err != nil {
			return 0, err
		}
		if totalAllocated == totalDistributed {
			_, err = tx.Exec(ctx,
				`UPDATE campaigns SET status = $1 WHERE id = $2`,
				int(domain.CampaignCompleted), campaignID)
			if err != nil {
				return 0, err
			}
		}
	}
	return allocated - newDistributed, nil
}

// ListByDistributorUser returns the distributor's distributions with
// the given statuses, newest first.
func (r *DistributionRepository) ListByDistributorUser(ctx context.Context, userID int64, statuses []domain.DistributionStatus) ([]port.DistributionView, error) {
	ints := make([]int, len(statuses))
	for i, s := range statuses {
		ints[i] = int(s)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT
			d.id,
			c.name,
			cu.company_name,
			c.description,
			COALESCE(c.image_name, ''),
			d.status,
			d.allocated,
			cs.distributed,
			d.start_date,
			d.end_date
		FROM distributions d
		JOIN campaigns c ON c.id = d.campaign_id
		JOIN customers cu ON cu.id = c.customer_id
		JOIN campaign_supports cs ON cs.campaign_id = d.campaign_id AND cs.support_id = d.support_id
		JOIN distributors dr ON dr.id = d.distributor_id
		WHERE dr.user_id = $1 AND d.status = ANY($2)
		ORDER BY d.start_date DESC`,
		userID, ints)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DistributionView, error) {
		var (
			dv     port.DistributionView
			status int
		)
		err := row.Scan(&dv.ID, &dv.CampaignName, &dv.ClientName, &dv.Description, &dv.ImageName,
			&status, &dv.Allocated, &dv.Distributed, &dv.StartDate, &dv.EndDate)
		dv.Status = domain.DistributionStatus(status)
		return dv, err
	})
}

// StatsByDistributor returns aggregate ledger counters for the
// distributor.
func (r *DistributionRepository) StatsByDistributor(ctx context.Context, distributorID int64) (*port.DistributorStatsRow, error) {
	var row port.DistributorStatsRow
	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(d.allocated), 0),
			COALESCE(SUM(cs.distributed), 0),
			COALESCE(SUM(CASE WHEN d.status = $2 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN c.status = $3 THEN cs.distributed ELSE 0 END), 0)
		FROM distributions d
		JOIN campaigns c ON c.id = d.campaign_id
		JOIN campaign_supports cs ON cs.campaign_id = d.campaign_id AND cs.support_id = d.support_id
		WHERE d.distributor_id = $1`,
		distributorID, int(domain.DistributionActive), int(domain.CampaignCompleted)).
		Scan(&row.BagsAllocated, &row.BagsDistributed, &row.ActiveCampaigns, &row.RevenueBags)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListPaymentRows returns raw payment projections for completed
// campaigns fulfilled by the user's distributor profile.
func (r *DistributionRepository) ListPaymentRows(ctx context.Context, userID int64) ([]port.PaymentRow, error) {
	rows, err := r.pool.Query(ctx, paymentQuery+` ORDER BY c.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.PaymentRow, error) {
		var pr port.PaymentRow
		err := row.Scan(&pr.CampaignID, &pr.Name, &pr.CreatedAt, &pr.Distributed)
		return pr, err
	})
}

// GetPaymentRow returns one raw payment projection, or nil when the
// campaign is not completed or not fulfilled by the caller.
func (r *DistributionRepository) GetPaymentRow(ctx context.Context, userID, campaignID int64) (*port.PaymentRow, error) {
	var pr port.PaymentRow
	err := r.pool.QueryRow(ctx, paymentQuery+` AND c.id = $2`, userID, campaignID).
		Scan(&pr.CampaignID, &pr.Name, &pr.CreatedAt, &pr.Distributed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// paymentQuery selects completed campaigns joined to the caller's
// distributions. Campaign status 2 is Completed.
const paymentQuery = `
	SELECT c.id, c.name, c.created_at, cs.distributed
	FROM campaigns c
	JOIN distributions d ON d.campaign_id = c.id
	JOIN campaign_supports cs ON cs.campaign_id = c.id AND cs.support_id = d.support_id
	JOIN distributors dr ON dr.id = d.distributor_id
	WHERE dr.user_id = $1 AND c.status = 2`
