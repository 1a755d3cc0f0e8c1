package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implements the PlantRepository port over PostgreSQL.
type PlantRepo struct {
	q Querier
}

func NewPlantRepository(q Querier) *PlantRepo {
	return &PlantRepo{q: q}
}

func (r *PlantRepo) Create(ctx context.Context, p *entity.Plant) error {
	query := `
		INSERT INTO plants (id, plant_id, plant_name, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PlantID, p.PlantName, p.Address, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

func (r *PlantRepo) GetByPlantID(ctx context.Context, plantID string) (*entity.Plant, error) {
	query := `
		SELECT id, plant_id, plant_name, address, active, created_at, updated_at
		FROM plants WHERE plant_id = $1`
	var p entity.Plant
	err := r.q.QueryRow(ctx, query, plantID).Scan(
		&p.ID, &p.PlantID, &p.PlantName, &p.Address, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return &p, nil
}

func (r *PlantRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Plant, error) {
	query := `
		SELECT id, plant_id, plant_name, address, active, created_at, updated_at
		FROM plants
		WHERE NOT $1 OR active
		ORDER BY plant_id`
	rows, err := r.q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	var out []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(
			&p.ID, &p.PlantID, &p.PlantName, &p.Address, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plant row: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PlantRepo) Save(ctx context.Context, p *entity.Plant) error {
	query := `
		UPDATE plants
		SET plant_name = $2, address = $3, active = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.PlantName, p.Address, p.Active)
	if err != nil {
		return fmt.Errorf("update plant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
