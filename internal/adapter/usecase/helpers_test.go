package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"groupbuy/internal/core/domain"
)

type inTx struct{}

// serialTx stands in for the database transactor: every outermost
// transaction runs while holding one lock, the way the row lock on the
// invoice counter serializes concurrent generation runs. Nested calls join
// the outer transaction.
type serialTx struct {
	mu sync.Mutex
}

func (s *serialTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTx{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, inTx{}, true))
}

var testNow = time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func testSettings() InvoiceSettings {
	return InvoiceSettings{
		VATRate:  decimal.RequireFromString("0.15"),
		DueDays:  30,
		Prefix:   "INV",
		Currency: "USD",
		Bank: domain.BankAccountDetails{
			BankName:      "First Commerce Bank",
			AccountNumber: "0012345678",
			SwiftCode:     "FCBKUS33",
			AccountHolder: "Group Buy Ltd",
		},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func int64p(n int64) *int64 { return &n }

func committedPledge(campaignID uuid.UUID, qty int64) domain.Pledge {
	return domain.Pledge{
		ID:                  uuid.New(),
		CampaignID:          campaignID,
		BuyerOrganizationID: uuid.New(),
		Quantity:            qty,
		Status:              domain.PledgeStatusCommitted,
		CreatedAt:           testNow.Add(-48 * time.Hour),
	}
}

func pendingIntent(p domain.Pledge) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:                  uuid.New(),
		PledgeID:            p.ID,
		CampaignID:          p.CampaignID,
		BuyerOrganizationID: p.BuyerOrganizationID,
		Amount:              decimal.NewFromInt(1),
		Status:              domain.PaymentIntentPending,
	}
}

func ladderFor(campaignID uuid.UUID) []domain.DiscountBracket {
	mk := func(min int64, max *int64, price string, order int) domain.DiscountBracket {
		return domain.DiscountBracket{
			ID:           uuid.New(),
			CampaignID:   campaignID,
			MinQuantity:  min,
			MaxQuantity:  max,
			UnitPrice:    dec(price),
			BracketOrder: order,
		}
	}
	return []domain.DiscountBracket{
		mk(0, int64p(9), "50.00", 0),
		mk(10, int64p(49), "40.00", 1),
		mk(50, nil, "30.00", 2),
	}
}
