package scan

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction, handing it
// repositories bound to that transaction. The scan engine relies on it for
// atomicity: either every write of an accepted scan lands, or none do.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sessionRepo repository.SessionRepository,
		assetRepo repository.AssetRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
