package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: one advertiser, five distributors covering
// the reference regions, a handful of draft campaigns with supports and
// allocations, and one already-accepted distribution with partial
// progress.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	cities := []string{"Monastir", "Tunis", "Sousse", "Nabeul", "Sfax"}

	var advertiserUserID int64
	err := db.QueryRow(ctx, `INSERT INTO users (username, email)
VALUES ('acme', 'acme@example.com') ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
RETURNING id`).Scan(&advertiserUserID)
	if err != nil {
		return err
	}
	var customerID int64
	err = db.QueryRow(ctx, `INSERT INTO customers (user_id, company_name)
VALUES ($1, 'ACME Retail') ON CONFLICT (user_id) DO UPDATE SET company_name = EXCLUDED.company_name
RETURNING id`, advertiserUserID).Scan(&customerID)
	if err != nil {
		return err
	}

	distributorIDs := make([]int64, 0, len(cities))
	for i, city := range cities {
		var userID int64
		err = db.QueryRow(ctx, `INSERT INTO users (username, email)
VALUES ($1, $2) ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
RETURNING id`,
			fmt.Sprintf("distributor-%d", i+1),
			fmt.Sprintf("distributor-%d@example.com", i+1)).Scan(&userID)
		if err != nil {
			return err
		}
		var distributorID int64
		err = db.QueryRow(ctx, `INSERT INTO distributors (user_id, city)
VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET city = EXCLUDED.city
RETURNING id`, userID, city).Scan(&distributorID)
		if err != nil {
			return err
		}
		distributorIDs = append(distributorIDs, distributorID)
	}

	for i := 1; i <= 5; i++ {
		quantity := 100 * i
		unitPrice := int64(2000) // 2 dinars per bag
		var campaignID int64
		err = db.QueryRow(ctx, `INSERT INTO campaigns
    (customer_id, name, description, status, need_designer, image_name, total_price, start_date, created_at)
VALUES ($1,$2,$3,0,false,$4,$5,$6,now())
RETURNING id`,
			customerID,
			fmt.Sprintf("Campaign %d", i),
			fmt.Sprintf("Demo campaign %d", i),
			uuid.NewString()+".png",
			unitPrice*int64(quantity),
			time.Now().AddDate(0, 0, i)).Scan(&campaignID)
		if err != nil {
			return err
		}

		// every demo campaign targets two regions
		for pos, city := range []string{cities[(i-1)%len(cities)], cities[i%len(cities)]} {
			_, err = db.Exec(ctx, `INSERT INTO campaign_regions (campaign_id, position, name)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, campaignID, pos, city)
			if err != nil {
				return err
			}
		}

		var supportID int64
		err = db.QueryRow(ctx, `INSERT INTO supports (name, price, image_name, created_at, updated_at)
VALUES ($1,$2,$3,now(),now())
RETURNING id`,
			fmt.Sprintf("Branded bag %d", i), unitPrice, uuid.NewString()+".png").Scan(&supportID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaign_supports (campaign_id, support_id, allocated, distributed)
VALUES ($1,$2,$3,0) ON CONFLICT DO NOTHING`, campaignID, supportID, quantity)
		if err != nil {
			return err
		}

		// the first campaign is already accepted with partial progress
		if i == 1 {
			_, err = db.Exec(ctx, `INSERT INTO distributions
    (campaign_id, distributor_id, support_id, allocated, status, start_date)
VALUES ($1,$2,$3,$4,1,now()) ON CONFLICT DO NOTHING`,
				campaignID, distributorIDs[0], supportID, quantity)
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `UPDATE campaigns SET status = 1 WHERE id = $1`, campaignID)
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `UPDATE campaign_supports SET distributed = $1
WHERE campaign_id = $2 AND support_id = $3`, quantity/4, campaignID, supportID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
