package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parkstay/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultTxAttempts = 4
	txBackoffStep     = 100 * time.Millisecond
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs sheet mutations in transactions, retrying serialization failures and deadlocks.
type TxRunner struct {
	db       TxBeginner
	logger   *slog.Logger
	attempts int
}

func NewTxRunner(db TxBeginner, logger *slog.Logger) *TxRunner {
	return &TxRunner{db: db, logger: logger, attempts: defaultTxAttempts}
}

func RunInTx[T any](ctx context.Context, r *TxRunner, fn func(tx pgx.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Warn("failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}
	return result, nil
}

// RunWithRetry repeats fn in a fresh transaction while it fails with a retryable error.
// Any other error, including ones fn returns on purpose, ends the loop immediately.
func RunWithRetry[T any](ctx context.Context, r *TxRunner, op string, fn func(tx pgx.Tx) (T, error)) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		result, err := RunInTx(ctx, r, fn)
		if err == nil {
			return result, nil
		}
		if !IsRetryableError(err) {
			return zero, err
		}
		if attempt >= r.attempts {
			r.logger.Error("transaction retries exhausted",
				slog.String("op", op),
				slog.Int("attempts", attempt),
				slog.String("error", err.Error()),
			)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := time.Duration(attempt) * txBackoffStep
		r.logger.Warn("retrying transaction",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
		)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// IsRetryableError reports serialization failures (40001) and deadlocks (40P01).
func IsRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
