package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// Nested RunInSnapshot calls open a second, independent transaction.
type TxManager struct {
	db txBeginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db txBeginner) *TxManager {
	return &TxManager{db: db}
}

// RunInSnapshot executes fn inside a read-only REPEATABLE READ transaction,
// so every query made through QuerierFromCtx sees the same snapshot.
// The transaction is always rolled back; it never writes.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	fnErr := fn(withTx(ctx, tx))

	if rbErr := tx.Rollback(ctx); rbErr != nil && fnErr == nil {
		return fmt.Errorf("end snapshot: %w", rbErr)
	}

	return fnErr
}
