package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
)

// Postgres error codes that make a transaction safe to replay.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// conn returns the transaction bound to ctx, or the pool when there is none.
func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Transactor implements port.Transactor on top of pgxpool. Transactions run
// at serializable isolation and are replayed with exponential backoff when
// Postgres aborts them for a retryable reason.
type Transactor struct {
	pool     *pgxpool.Pool
	logger   *slog.Logger
	maxTries uint
}

// NewTransactor returns a Transactor that replays a failed transaction at
// most maxTries times in total.
func NewTransactor(pool *pgxpool.Pool, logger *slog.Logger, maxTries uint) *Transactor {
	if maxTries == 0 {
		maxTries = 1
	}
	return &Transactor{pool: pool, logger: logger, maxTries: maxTries}
}

// WithinTx runs fn in a transaction. If ctx already carries one, fn joins it
// and the outer caller owns commit, rollback and retries.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	attempt := 0
	operation := func() (struct{}, error) {
		attempt++
		err := t.runOnce(ctx, fn)
		if err == nil {
			return struct{}{}, nil
		}
		if !retryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		t.logger.Warn("transaction aborted, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
		return struct{}{}, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond

	_, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(t.maxTries))
	if err != nil && retryable(err) {
		return fmt.Errorf("%w: gave up after %d attempts: %w", domain.ErrConflict, attempt, err)
	}
	return err
}

func (t *Transactor) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, tx))
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeUniqueViolation:
		return true
	}
	return false
}
