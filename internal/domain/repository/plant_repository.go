package repository

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// PlantRepository is the persistence port for plants.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	GetByPlantID(ctx context.Context, plantID string) (*entity.Plant, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Plant, error)
	Save(ctx context.Context, plant *entity.Plant) error
}
