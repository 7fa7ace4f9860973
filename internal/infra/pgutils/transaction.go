package pgutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrTxConflict is returned when a transaction keeps losing to concurrent
// updates after all retries. Safe for the caller to retry later.
var ErrTxConflict = errors.New("transaction conflict")

// WithTx runs fn inside a transaction.
// It commits if fn returns nil, otherwise it rolls back.
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil) // default isolation level
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	err = fn(tx)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("rollback after fn error: %v (fn err: %w)", rbErr, err)
		}
		return fmt.Errorf("fn: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

const maxTxAttempts = 3

// WithTxRetry is WithTx plus a bounded retry on serialization failures and
// deadlocks. fn must be safe to re-run from scratch; after the last attempt
// the error is ErrTxConflict.
func WithTxRetry(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	var err error

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = WithTx(ctx, db, fn)
		if err == nil || !isRetryable(err) {
			return err
		}

		if ctx.Err() != nil {
			return fmt.Errorf("tx retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("%w: %v", ErrTxConflict, err)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
