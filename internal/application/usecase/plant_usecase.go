package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// PlantUseCase plant master CRUD.
type PlantUseCase struct {
	plantRepo repository.PlantRepository
}

// NewPlantUseCase builds the use case.
func NewPlantUseCase(plantRepo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{plantRepo: plantRepo}
}

// Create registers a plant. Plant codes are unique and upper-cased.
func (uc *PlantUseCase) Create(ctx context.Context, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	plantID := strings.ToUpper(strings.TrimSpace(in.PlantID))
	if plantID == "" || in.PlantName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.plantRepo.GetByPlantID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	plant := &entity.Plant{
		ID:        uuid.New().String(),
		PlantID:   plantID,
		PlantName: in.PlantName,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}
	return toPlantResponse(plant), nil
}

// List returns plants, optionally only the active ones.
func (uc *PlantUseCase) List(ctx context.Context, activeOnly bool) ([]dto.PlantResponse, error) {
	plants, err := uc.plantRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, *toPlantResponse(p))
	}
	return out, nil
}

// Toggle flips a plant between active and inactive.
func (uc *PlantUseCase) Toggle(ctx context.Context, plantID string) error {
	plant, err := uc.plantRepo.GetByPlantID(ctx, plantID)
	if err != nil {
		return err
	}
	if plant == nil {
		return domain.ErrNotFound
	}
	plant.Active = !plant.Active
	plant.UpdatedAt = time.Now()
	return uc.plantRepo.Save(ctx, plant)
}

func toPlantResponse(p *entity.Plant) *dto.PlantResponse {
	return &dto.PlantResponse{
		PlantID:   p.PlantID,
		PlantName: p.PlantName,
		Address:   p.Address,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}
