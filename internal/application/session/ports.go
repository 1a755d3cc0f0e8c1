package session

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction. Close needs it so
// the status check and the completion write ride the same session row lock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sessionRepo repository.SessionRepository,
		assetRepo repository.AssetRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
