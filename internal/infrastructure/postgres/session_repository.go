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

var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionColumns = `id, mode, document_no, total_qty, scanned_qty, remark, plant_id,
		created_by, status, ship_to_address, transporter, transport_mode, vehicle_no,
		created_at, updated_at`

// SessionRepo implements the SessionRepository port over PostgreSQL. Works
// with a pool or a transaction (Querier).
type SessionRepo struct {
	q Querier
}

func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Mode, s.DocumentNo, s.TotalQty, s.ScannedQty, s.Remark, s.PlantID,
		s.CreatedBy, s.Status, s.ShipToAddress, s.Transporter, s.TransportMode, s.VehicleNo,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		// The partial unique index on (plant_id, document_no) closes the race
		// between two concurrent starts with the same document.
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDocument
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get session")
}

func (r *SessionRepo) GetForUpdate(ctx context.Context, id string) (*entity.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "lock session")
}

func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	query := `
		UPDATE sessions
		SET scanned_qty = $2, remark = $3, status = $4, ship_to_address = $5,
			transporter = $6, transport_mode = $7, vehicle_no = $8, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.ScannedQty, s.Remark, s.Status,
		s.ShipToAddress, s.Transporter, s.TransportMode, s.VehicleNo,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SessionRepo) ExistsDocument(ctx context.Context, plantID, documentNo string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE plant_id = $1 AND document_no = $2 AND status <> 'draft'
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, plantID, documentNo).Scan(&exists); err != nil {
		return false, fmt.Errorf("check document: %w", err)
	}
	return exists, nil
}

func (r *SessionRepo) FindCompletedByDocument(ctx context.Context, plantID, documentNo string) (*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE plant_id = $1 AND document_no = $2 AND status = 'completed'`
	return r.scanOne(r.q.QueryRow(ctx, query, plantID, documentNo), "get session by document")
}

func (r *SessionRepo) ListShortQty(ctx context.Context, plantID, documentNo string) ([]*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE plant_id = $1
		  AND ($2 = '' OR document_no = $2)
		  AND status = 'completed'
		  AND total_qty IS NOT NULL
		  AND scanned_qty < total_qty
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, plantID, documentNo)
	if err != nil {
		return nil, fmt.Errorf("list short sessions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Session
	for rows.Next() {
		var s entity.Session
		if err := rows.Scan(
			&s.ID, &s.Mode, &s.DocumentNo, &s.TotalQty, &s.ScannedQty, &s.Remark, &s.PlantID,
			&s.CreatedBy, &s.Status, &s.ShipToAddress, &s.Transporter, &s.TransportMode, &s.VehicleNo,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SessionRepo) scanOne(row pgx.Row, op string) (*entity.Session, error) {
	var s entity.Session
	err := row.Scan(
		&s.ID, &s.Mode, &s.DocumentNo, &s.TotalQty, &s.ScannedQty, &s.Remark, &s.PlantID,
		&s.CreatedBy, &s.Status, &s.ShipToAddress, &s.Transporter, &s.TransportMode, &s.VehicleNo,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
