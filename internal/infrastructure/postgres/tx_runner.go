package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nilp45/asset-tracker-backend/internal/application/scan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/session"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// TxRunner executes use case work inside a single pgx transaction, binding
// fresh repository adapters to the transaction handle.
type TxRunner struct {
	pool *pgxpool.Pool
}

var (
	_ scan.TxRunner    = (*TxRunner)(nil)
	_ session.TxRunner = (*TxRunner)(nil)
)

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	sessionRepo repository.SessionRepository,
	assetRepo repository.AssetRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewSessionRepository(tx),
		NewAssetRepository(tx),
		NewMovementRepository(tx),
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
