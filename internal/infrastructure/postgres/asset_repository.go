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

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, asset_id, asset_type, customer, plant_id, description,
		pm_cycle, cycle_since_ok, last_ok_at, current_location, status, active, created_at, updated_at`

// AssetRepo implements the AssetRepository port over PostgreSQL. Works with a
// pool or a transaction (Querier).
type AssetRepo struct {
	q Querier
}

func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.AssetID, a.AssetType, a.Customer, a.PlantID, a.Description,
		a.PMCycle, a.CycleSinceOK, a.LastOKAt, a.CurrentLocation, a.Status, a.Active,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

func (r *AssetRepo) FindActive(ctx context.Context, assetID, plantID string) (*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets WHERE asset_id = $1 AND plant_id = $2 AND active`
	return r.scanOne(r.q.QueryRow(ctx, query, assetID, plantID), "find asset")
}

func (r *AssetRepo) FindActiveForUpdate(ctx context.Context, assetID, plantID string) (*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets WHERE asset_id = $1 AND plant_id = $2 AND active
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, assetID, plantID), "lock asset")
}

// Save persists the mutable tracking fields. Identity columns never change
// after provisioning.
func (r *AssetRepo) Save(ctx context.Context, a *entity.Asset) error {
	query := `
		UPDATE assets
		SET customer = $2, description = $3, pm_cycle = $4, cycle_since_ok = $5,
			last_ok_at = $6, current_location = $7, status = $8, active = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.Customer, a.Description, a.PMCycle, a.CycleSinceOK,
		a.LastOKAt, a.CurrentLocation, a.Status, a.Active,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepo) Search(ctx context.Context, filter repository.AssetSearchFilter) ([]*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE ($1 = '' OR asset_id = $1)
		  AND ($2 = '' OR plant_id = $2)
		  AND ($3 = '' OR asset_type = $3)
		ORDER BY asset_id`
	rows, err := r.q.Query(ctx, query, filter.AssetID, filter.PlantID, filter.AssetType)
	if err != nil {
		return nil, fmt.Errorf("search assets: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *AssetRepo) ListActiveByPlant(ctx context.Context, plantID string) ([]*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets WHERE plant_id = $1 AND active
		ORDER BY asset_id`
	rows, err := r.q.Query(ctx, query, plantID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *AssetRepo) scanOne(row pgx.Row, op string) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.AssetID, &a.AssetType, &a.Customer, &a.PlantID, &a.Description,
		&a.PMCycle, &a.CycleSinceOK, &a.LastOKAt, &a.CurrentLocation, &a.Status, &a.Active,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *AssetRepo) collect(rows pgx.Rows) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(
			&a.ID, &a.AssetID, &a.AssetType, &a.Customer, &a.PlantID, &a.Description,
			&a.PMCycle, &a.CycleSinceOK, &a.LastOKAt, &a.CurrentLocation, &a.Status, &a.Active,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset row: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
