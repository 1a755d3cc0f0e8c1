package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/tracking"
)

// AssetUseCase admin-side asset provisioning, master search and location
// lookup.
type AssetUseCase struct {
	assetRepo    repository.AssetRepository
	plantRepo    repository.PlantRepository
	movementRepo repository.MovementRepository
}

// NewAssetUseCase builds the use case.
func NewAssetUseCase(assetRepo repository.AssetRepository, plantRepo repository.PlantRepository, movementRepo repository.MovementRepository) *AssetUseCase {
	return &AssetUseCase{assetRepo: assetRepo, plantRepo: plantRepo, movementRepo: movementRepo}
}

// AddBatch provisions a batch of identical assets with generated scan codes
// (TYPE-<unix-ms>-<n>). Assets start with no movement history and a zero
// duty cycle.
func (uc *AssetUseCase) AddBatch(ctx context.Context, in dto.AddAssetsRequest) (*dto.AddAssetsResponse, error) {
	assetType := strings.ToUpper(strings.TrimSpace(in.AssetType))
	if assetType == "" || in.Quantity <= 0 || in.Customer == "" || in.PlantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PMCycle != nil && *in.PMCycle <= 0 {
		return nil, domain.ErrInvalidInput
	}
	plant, err := uc.plantRepo.GetByPlantID(ctx, in.PlantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	batch := now.UnixMilli()
	created := 0
	for i := 1; i <= in.Quantity; i++ {
		asset := &entity.Asset{
			ID:              uuid.New().String(),
			AssetID:         fmt.Sprintf("%s-%d-%d", assetType, batch, i),
			AssetType:       assetType,
			Customer:        in.Customer,
			PlantID:         in.PlantID,
			Description:     in.Description,
			PMCycle:         in.PMCycle,
			CycleSinceOK:    0,
			CurrentLocation: entity.LocationNoMovement,
			Status:          entity.AssetStatusAvailable,
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.assetRepo.Create(ctx, asset); err != nil {
			return nil, err
		}
		created++
	}
	return &dto.AddAssetsResponse{Created: created}, nil
}

// Locate derives an asset's current location from its newest movement. The
// answer always agrees with the ledger's CurrentLocation because both come
// from the same accepted-movement history; this reads the history directly
// so the reply can carry the movement behind it.
func (uc *AssetUseCase) Locate(ctx context.Context, assetID, plantID string) (*dto.AssetLocationResponse, error) {
	assetID = strings.ToUpper(strings.TrimSpace(assetID))
	if assetID == "" || plantID == "" {
		return nil, domain.ErrInvalidInput
	}
	asset, err := uc.assetRepo.FindActive(ctx, assetID, plantID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	last, err := uc.movementRepo.Latest(ctx, assetID, plantID)
	if err != nil {
		return nil, err
	}
	resp := &dto.AssetLocationResponse{
		AssetID:  assetID,
		Location: string(tracking.Resolve(last)),
	}
	if last != nil {
		mode := string(last.Mode)
		at := last.MovementTime
		resp.LastMode = &mode
		resp.LastScanAt = &at
	}
	return resp, nil
}

// Search queries the asset master by id, plant and/or type.
func (uc *AssetUseCase) Search(ctx context.Context, filter repository.AssetSearchFilter) ([]dto.AssetResponse, error) {
	filter.AssetID = strings.ToUpper(strings.TrimSpace(filter.AssetID))
	assets, err := uc.assetRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, dto.AssetResponse{
			AssetID:         a.AssetID,
			AssetType:       a.AssetType,
			Customer:        a.Customer,
			PlantID:         a.PlantID,
			Description:     a.Description,
			PMCycle:         a.PMCycle,
			CycleSinceOK:    a.CycleSinceOK,
			LastOKAt:        a.LastOKAt,
			CurrentLocation: string(a.CurrentLocation),
			Status:          a.Status,
			Active:          a.Active,
			CreatedAt:       a.CreatedAt,
		})
	}
	return out, nil
}
