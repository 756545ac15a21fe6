package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// PaymentIntentUseCase enforces the payment intent state machine. Retries
// are scheduled by an external collection orchestrator; this side only
// validates and records each step.
type PaymentIntentUseCase struct {
	tx     port.Transactor
	repo   port.PaymentIntentRepository
	logger *slog.Logger

	now func() time.Time
}

// NewPaymentIntentUseCase creates a new usecase with the provided repository.
func NewPaymentIntentUseCase(tx port.Transactor, repo port.PaymentIntentRepository, logger *slog.Logger) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{tx: tx, repo: repo, logger: logger, now: utcNow}
}

// GetPaymentIntent returns an intent by id.
func (u *PaymentIntentUseCase) GetPaymentIntent(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error) {
	pi, err := u.repo.GetPaymentIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	if pi == nil {
		return nil, domain.NewNotFound("payment intent", id)
	}
	return pi, nil
}

// UpdatePaymentStatus moves the intent to status. Skipping a retry stage,
// leaving a terminal state or reaching SENT_TO_AR before FAILED_RETRY_3 is
// rejected with a TransitionError.
func (u *PaymentIntentUseCase) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentIntentStatus) (*domain.PaymentIntent, error) {
	var out *domain.PaymentIntent
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		pi, err := u.repo.GetPaymentIntentForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if pi == nil {
			return domain.NewNotFound("payment intent", id)
		}
		from := pi.Status
		if err = pi.Transition(status); err != nil {
			return err
		}
		pi.UpdatedAt = u.now()
		if err = u.repo.UpdatePaymentIntent(ctx, pi); err != nil {
			return err
		}
		u.logger.Info("payment intent status changed",
			slog.String("payment_intent_id", id.String()),
			slog.String("from", string(from)),
			slog.String("to", string(status)),
			slog.Int("retry_count", pi.RetryCount))
		out = pi
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
