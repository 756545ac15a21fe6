package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
)

const paymentIntentColumns = `id, pledge_id, campaign_id, buyer_organization_id, amount, status, retry_count, created_at, updated_at`

// PaymentIntentRepository implements port.PaymentIntentRepository.
type PaymentIntentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentIntentRepository returns a new repository instance.
func NewPaymentIntentRepository(pool *pgxpool.Pool) *PaymentIntentRepository {
	return &PaymentIntentRepository{pool: pool}
}

func scanPaymentIntent(row pgx.Row) (*domain.PaymentIntent, error) {
	var pi domain.PaymentIntent
	err := row.Scan(&pi.ID, &pi.PledgeID, &pi.CampaignID, &pi.BuyerOrganizationID, &pi.Amount,
		&pi.Status, &pi.RetryCount, &pi.CreatedAt, &pi.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

// GetPaymentIntent returns an intent by id.
func (r *PaymentIntentRepository) GetPaymentIntent(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error) {
	return scanPaymentIntent(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+paymentIntentColumns+` FROM payment_intents WHERE id = $1`, id))
}

// GetPaymentIntentForUpdate returns an intent by id and locks its row.
func (r *PaymentIntentRepository) GetPaymentIntentForUpdate(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error) {
	return scanPaymentIntent(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+paymentIntentColumns+` FROM payment_intents WHERE id = $1 FOR UPDATE`, id))
}

// FindPaymentIntentByPledge returns the intent backing a pledge.
func (r *PaymentIntentRepository) FindPaymentIntentByPledge(ctx context.Context, pledgeID uuid.UUID) (*domain.PaymentIntent, error) {
	return scanPaymentIntent(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+paymentIntentColumns+` FROM payment_intents WHERE pledge_id = $1`, pledgeID))
}

// UpdatePaymentIntent stores status, retry count and amount.
func (r *PaymentIntentRepository) UpdatePaymentIntent(ctx context.Context, pi *domain.PaymentIntent) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE payment_intents
		SET status = $2, retry_count = $3, amount = $4, updated_at = $5 WHERE id = $1`,
		pi.ID, pi.Status, pi.RetryCount, pi.Amount, pi.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("payment intent", pi.ID)
	}
	return nil
}
