package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"groupbuy/internal/core/domain"
)

// seedNamespace derives stable ids so that re-running Seed is a no-op.
var seedNamespace = uuid.MustParse("6f1c1f7e-3b8a-4c55-9d2e-2a7d0b4e9c11")

func seedID(name string) uuid.UUID { return uuid.NewSHA1(seedNamespace, []byte(name)) }

type seedBracket struct {
	min   int64
	max   *int64
	price string
}

func bound(n int64) *int64 { return &n }

// Seed inserts an ACTIVE demo campaign with a three tier ladder, committed
// pledges from five buyers and a PENDING payment intent per pledge. With
// 20+15+10+8+2 = 55 units committed, locking it lands in the top tier.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()
	campaignID := seedID("campaign")
	supplierID := seedID("supplier")

	brackets := []seedBracket{
		{0, bound(9), "50.00"},
		{10, bound(49), "40.00"},
		{50, nil, "30.00"},
	}
	quantities := []int64{20, 15, 10, 8, 2}

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, supplier_organization_id, title, description, target_quantity, start_date, end_date, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, supplierID, "A4 copier paper, 80gsm (box of 5 reams)",
			"Bulk order for member offices", int64(50),
			now.AddDate(0, 0, -7), now.AddDate(0, 0, 21), domain.CampaignStatusActive)
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}

		for i, b := range brackets {
			_, err = tx.Exec(ctx, `INSERT INTO discount_brackets
    (id, campaign_id, min_quantity, max_quantity, unit_price, bracket_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
				seedID(fmt.Sprintf("bracket-%d", i)), campaignID, b.min, b.max, decimal.RequireFromString(b.price), i)
			if err != nil {
				return fmt.Errorf("seed bracket %d: %w", i, err)
			}
		}

		firstPrice := decimal.RequireFromString(brackets[0].price)
		for i, q := range quantities {
			pledgeID := seedID(fmt.Sprintf("pledge-%d", i))
			buyerID := seedID(fmt.Sprintf("buyer-%d", i))
			_, err = tx.Exec(ctx, `INSERT INTO pledges
    (id, campaign_id, buyer_organization_id, quantity, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				pledgeID, campaignID, buyerID, q, domain.PledgeStatusCommitted, now.Add(-time.Duration(i+1)*time.Hour))
			if err != nil {
				return fmt.Errorf("seed pledge %d: %w", i, err)
			}

			// Authorized at list price; generation rewrites it to the invoice total.
			_, err = tx.Exec(ctx, `INSERT INTO payment_intents
    (id, pledge_id, campaign_id, buyer_organization_id, amount, status, retry_count, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,0,now(),now()) ON CONFLICT DO NOTHING`,
				seedID(fmt.Sprintf("intent-%d", i)), pledgeID, campaignID, buyerID,
				firstPrice.Mul(decimal.NewFromInt(q)), domain.PaymentIntentPending)
			if err != nil {
				return fmt.Errorf("seed payment intent %d: %w", i, err)
			}
		}
		return nil
	})
}
