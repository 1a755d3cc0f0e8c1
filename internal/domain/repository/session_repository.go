package repository

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// SessionRepository is the persistence port for scan sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	// GetForUpdate locks the session row. The scan transaction serializes on
	// this lock so two concurrent scans cannot read the same scanned quantity.
	GetForUpdate(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	// ExistsDocument reports whether any active or completed session already
	// uses this document number at the plant (open documents are exclusive,
	// completed ones may not reopen).
	ExistsDocument(ctx context.Context, plantID, documentNo string) (bool, error)
	// FindCompletedByDocument returns the completed session behind a challan
	// document, or nil.
	FindCompletedByDocument(ctx context.Context, plantID, documentNo string) (*entity.Session, error)
	// ListShortQty returns completed bounded sessions whose scanned quantity
	// fell short of the target. documentNo empty means all documents.
	ListShortQty(ctx context.Context, plantID, documentNo string) ([]*entity.Session, error)
}
