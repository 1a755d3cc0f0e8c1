// Package maintenance exposes the preventive-maintenance read models.
package maintenance

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/tracking"
)

// PMDueUseCase lists assets whose duty cycle reached the configured PM
// threshold. Read-only; the same tracking.PMDue predicate also feeds the
// dashboard count.
type PMDueUseCase struct {
	assetRepo repository.AssetRepository
}

// NewPMDueUseCase builds the use case.
func NewPMDueUseCase(assetRepo repository.AssetRepository) *PMDueUseCase {
	return &PMDueUseCase{assetRepo: assetRepo}
}

// ListDue returns the PM pending list for a plant.
func (uc *PMDueUseCase) ListDue(ctx context.Context, plantID string) ([]dto.PMDueAssetDTO, error) {
	if plantID == "" {
		return nil, domain.ErrInvalidInput
	}
	assets, err := uc.assetRepo.ListActiveByPlant(ctx, plantID)
	if err != nil {
		return nil, err
	}
	due := make([]dto.PMDueAssetDTO, 0)
	for _, a := range assets {
		if !tracking.PMDue(a) {
			continue
		}
		description := a.Description
		if description == "" {
			description = "-"
		}
		due = append(due, dto.PMDueAssetDTO{
			AssetID:      a.AssetID,
			Description:  description,
			AssetType:    a.AssetType,
			Customer:     a.Customer,
			CycleSinceOK: a.CycleSinceOK,
			PMCycle:      *a.PMCycle,
			Status:       "PM DUE",
		})
	}
	return due, nil
}
