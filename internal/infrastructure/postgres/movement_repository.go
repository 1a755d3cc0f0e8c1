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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements the MovementRepository port over PostgreSQL. Works
// with a pool or a transaction (Querier).
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, session_id, asset_id, plant_id, mode, by_user, movement_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.SessionID, m.AssetID, m.PlantID, m.Mode, m.ByUser, m.MovementTime, m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		// Unique (session_id, asset_id) backstops the in-transaction
		// duplicate check under concurrency.
		if isUniqueViolation(err) {
			return domain.ErrDuplicateScan
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) Latest(ctx context.Context, assetID, plantID string) (*entity.Movement, error) {
	query := `
		SELECT id, session_id, asset_id, plant_id, mode, by_user, movement_time, created_at, seq
		FROM movements
		WHERE asset_id = $1 AND plant_id = $2
		ORDER BY movement_time DESC, seq DESC
		LIMIT 1`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, assetID, plantID).Scan(
		&m.ID, &m.SessionID, &m.AssetID, &m.PlantID, &m.Mode, &m.ByUser,
		&m.MovementTime, &m.CreatedAt, &m.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest movement: %w", err)
	}
	return &m, nil
}

func (r *MovementRepo) Exists(ctx context.Context, sessionID, assetID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movements WHERE session_id = $1 AND asset_id = $2)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, sessionID, assetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check movement: %w", err)
	}
	return exists, nil
}

func (r *MovementRepo) ListJoined(ctx context.Context, filter repository.MovementFilter) ([]repository.MovementJoinedRow, error) {
	query := `
		SELECT m.asset_id, a.asset_type, a.description, m.mode, s.document_no,
		       m.plant_id, m.by_user, m.movement_time
		FROM movements m
		JOIN sessions s ON s.id = m.session_id
		JOIN assets a ON a.asset_id = m.asset_id AND a.plant_id = m.plant_id
		WHERE m.plant_id = $1
		  AND ($2 = '' OR m.asset_id = $2)
		  AND ($3 = '' OR m.mode = $3)
		  AND ($4 = '' OR s.document_no = $4)
		  AND ($5::timestamptz IS NULL OR m.movement_time >= $5)
		  AND ($6::timestamptz IS NULL OR m.movement_time <= $6)
		ORDER BY m.movement_time DESC, m.seq DESC`
	rows, err := r.q.Query(ctx, query,
		filter.PlantID, filter.AssetID, string(filter.Mode), filter.DocumentNo, filter.From, filter.To,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []repository.MovementJoinedRow
	for rows.Next() {
		var row repository.MovementJoinedRow
		if err := rows.Scan(
			&row.AssetID, &row.AssetType, &row.Description, &row.Mode, &row.DocumentNo,
			&row.PlantID, &row.ByUser, &row.MovementTime,
		); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *MovementRepo) LastScanPerAsset(ctx context.Context, plantID string) ([]repository.LastScan, error) {
	query := `
		SELECT DISTINCT ON (asset_id) asset_id, mode, movement_time
		FROM movements
		WHERE plant_id = $1
		ORDER BY asset_id, movement_time DESC, seq DESC`
	rows, err := r.q.Query(ctx, query, plantID)
	if err != nil {
		return nil, fmt.Errorf("project last scans: %w", err)
	}
	defer rows.Close()

	var out []repository.LastScan
	for rows.Next() {
		var ls repository.LastScan
		if err := rows.Scan(&ls.AssetID, &ls.Mode, &ls.ScannedAt); err != nil {
			return nil, fmt.Errorf("scan projection row: %w", err)
		}
		out = append(out, ls)
	}
	return out, rows.Err()
}

func (r *MovementRepo) ChallanItems(ctx context.Context, sessionID string) ([]repository.ChallanItem, error) {
	query := `
		SELECT a.asset_type, a.description, COUNT(*) AS qty
		FROM movements m
		JOIN assets a ON a.asset_id = m.asset_id AND a.plant_id = m.plant_id
		WHERE m.session_id = $1
		GROUP BY a.asset_type, a.description
		ORDER BY a.asset_type, a.description`
	rows, err := r.q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("group challan items: %w", err)
	}
	defer rows.Close()

	var out []repository.ChallanItem
	for rows.Next() {
		var item repository.ChallanItem
		if err := rows.Scan(&item.AssetType, &item.Description, &item.Qty); err != nil {
			return nil, fmt.Errorf("scan challan row: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
