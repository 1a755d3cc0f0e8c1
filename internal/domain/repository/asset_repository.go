package repository

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// AssetSearchFilter narrows asset master searches. Zero values mean "any".
type AssetSearchFilter struct {
	AssetID   string
	PlantID   string
	AssetType string
}

// AssetRepository is the persistence port for the asset ledger.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	// FindActive looks up an active asset by scan code within a plant. A plant
	// mismatch or inactive asset is a miss, not an error.
	FindActive(ctx context.Context, assetID, plantID string) (*entity.Asset, error)
	// FindActiveForUpdate is FindActive with a row lock, for use inside the
	// scan transaction.
	FindActiveForUpdate(ctx context.Context, assetID, plantID string) (*entity.Asset, error)
	// Save persists duty-cycle, last-OK and location mutations after an
	// accepted scan.
	Save(ctx context.Context, asset *entity.Asset) error
	Search(ctx context.Context, filter AssetSearchFilter) ([]*entity.Asset, error)
	// ListActiveByPlant feeds the PM due list and the dashboard.
	ListActiveByPlant(ctx context.Context, plantID string) ([]*entity.Asset, error)
}
