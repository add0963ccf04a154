package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is what repositories run statements against: the pool, or the
// transaction opened by TxManager.RunInTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKey struct{}

// QuerierFromCtx returns the transaction carried by ctx, or pool when there is none.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// TxManager runs callbacks inside a single read-committed transaction.
// Nesting is not supported: RunInTx inside a callback opens a second,
// independent transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx commits when fn returns nil and rolls back otherwise, returning
// fn's error unchanged. A panic in fn rolls back and keeps propagating.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var fnErr error
	err := pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		fnErr = fn(context.WithValue(ctx, txCtxKey{}, tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return err
}
