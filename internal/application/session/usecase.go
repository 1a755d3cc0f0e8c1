package session

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
)

// UseCase starts and closes scan sessions. Start enforces document-number
// uniqueness for IN/OUT; Close resolves short quantity and is never a no-op
// on an already-completed session.
type UseCase struct {
	sessionRepo repository.SessionRepository
	txRunner    TxRunner
}

// NewUseCase builds the use case.
func NewUseCase(sessionRepo repository.SessionRepository, txRunner TxRunner) *UseCase {
	return &UseCase{sessionRepo: sessionRepo, txRunner: txRunner}
}

// Start opens a new active session. IN/OUT sessions require a document number
// and a positive target quantity, and reject a document number that is
// already open or completed at the plant. MAINT/OK sessions are ad-hoc:
// no document, unbounded unless a quantity is given.
func (uc *UseCase) Start(ctx context.Context, createdBy string, in dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	mode := entity.Mode(strings.ToUpper(strings.TrimSpace(in.Mode)))
	if !mode.Valid() || in.PlantID == "" || createdBy == "" {
		return nil, domain.ErrInvalidInput
	}

	var documentNo *string
	var totalQty *int
	if mode == entity.ModeIN || mode == entity.ModeOUT {
		doc := strings.TrimSpace(in.DocumentNo)
		if doc == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.TotalQty <= 0 {
			return nil, domain.ErrInvalidInput
		}
		exists, err := uc.sessionRepo.ExistsDocument(ctx, in.PlantID, doc)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateDocument
		}
		documentNo = &doc
		qty := in.TotalQty
		totalQty = &qty
	} else if in.TotalQty > 0 {
		qty := in.TotalQty
		totalQty = &qty
	}

	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New().String(),
		Mode:       mode,
		DocumentNo: documentNo,
		TotalQty:   totalQty,
		ScannedQty: 0,
		PlantID:    in.PlantID,
		CreatedBy:  createdBy,
		Status:     entity.SessionStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	// The partial unique index on (plant_id, document_no) closes the race
	// between the ExistsDocument check and this insert.
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.StartSessionResponse{SessionID: session.ID}, nil
}

// Close completes an active session. A bounded session that closed short gets
// a remark recording the deficit. Closing anything that is not active —
// including a session already completed — is a conflict, not a silent
// success.
func (uc *UseCase) Close(ctx context.Context, in dto.CloseSessionRequest) (*dto.CloseSessionResponse, error) {
	if in.SessionID == "" {
		return nil, domain.ErrInvalidInput
	}

	var resp dto.CloseSessionResponse
	err := uc.txRunner.Run(ctx, func(
		sessionRepo repository.SessionRepository,
		_ repository.AssetRepository,
		_ repository.MovementRepository,
	) error {
		session, err := sessionRepo.GetForUpdate(ctx, in.SessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNotFound
		}
		if session.Status != entity.SessionStatusActive {
			return domain.ErrSessionClosed
		}

		if session.TotalQty != nil && session.ScannedQty < *session.TotalQty {
			session.Remark = fmt.Sprintf("%d qty short against document", *session.TotalQty-session.ScannedQty)
			resp.CompletedWithRemark = true
			remark := session.Remark
			resp.Remark = &remark
		}
		session.Status = entity.SessionStatusCompleted
		session.UpdatedAt = time.Now()
		return sessionRepo.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one session by id.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return toSessionResponse(session), nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:         s.ID,
		Mode:       string(s.Mode),
		DocumentNo: s.DocumentNo,
		TotalQty:   s.TotalQty,
		ScannedQty: s.ScannedQty,
		Remark:     s.Remark,
		PlantID:    s.PlantID,
		CreatedBy:  s.CreatedBy,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}
