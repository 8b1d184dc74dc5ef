package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func runInTx(ctx context.Context, db *pgxpool.Pool, txOptions pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	// The caller's context may already be done; rollback must still reach the server.
	rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
	if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func toPgxTxOptions(opts domain.TxOptions) pgx.TxOptions {
	var txOptions pgx.TxOptions

	switch opts.Isolation {
	case domain.Serializable:
		txOptions.IsoLevel = pgx.Serializable
	case domain.RepeatableRead:
		txOptions.IsoLevel = pgx.RepeatableRead
	case domain.ReadCommitted:
		txOptions.IsoLevel = pgx.ReadCommitted
	}

	return txOptions
}

// classifyTxError maps server-side conflict errors onto domain sentinels,
// keeping the original error in the chain.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %w", domain.ErrTxConflict, err)
		}
	}

	return err
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
