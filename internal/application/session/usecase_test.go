package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	sessionuc "github.com/Nilp45/asset-tracker-backend/internal/application/session"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// Minimal in-memory session store; the TxRunner serializes on a mutex like
// the real row lock does.
type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]*entity.Session{}}
}

func (s *memSessions) Run(ctx context.Context, fn func(
	sessionRepo repository.SessionRepository,
	assetRepo repository.AssetRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s, nil, nil)
}

func (s *memSessions) Create(_ context.Context, session *entity.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *memSessions) GetByID(_ context.Context, id string) (*entity.Session, error) {
	return s.sessions[id], nil
}

func (s *memSessions) GetForUpdate(ctx context.Context, id string) (*entity.Session, error) {
	return s.GetByID(ctx, id)
}

func (s *memSessions) Save(_ context.Context, session *entity.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *memSessions) ExistsDocument(_ context.Context, plantID, documentNo string) (bool, error) {
	for _, ses := range s.sessions {
		if ses.PlantID == plantID && ses.DocumentNo != nil && *ses.DocumentNo == documentNo && ses.Status != entity.SessionStatusDraft {
			return true, nil
		}
	}
	return false, nil
}

func (s *memSessions) FindCompletedByDocument(context.Context, string, string) (*entity.Session, error) {
	return nil, nil
}

func (s *memSessions) ListShortQty(context.Context, string, string) ([]*entity.Session, error) {
	return nil, nil
}

const testPlant = "PUNE1"

func newUC(store *memSessions) *sessionuc.UseCase {
	return sessionuc.NewUseCase(store, store)
}

func TestStart_INRequiresDocumentAndQty(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)

	_, err := uc.Start(context.Background(), "op", dto.StartSessionRequest{Mode: "IN", PlantID: testPlant, TotalQty: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "IN without document number")

	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{Mode: "OUT", PlantID: testPlant, DocumentNo: "INV-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "OUT without positive quantity")

	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{Mode: "IN", DocumentNo: "INV-1", TotalQty: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing plant")

	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{Mode: "TELEPORT", PlantID: testPlant})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown mode")
}

func TestStart_CreatesActiveSession(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)

	resp, err := uc.Start(context.Background(), "op", dto.StartSessionRequest{
		Mode: "in", DocumentNo: "INV-1", TotalQty: 5, PlantID: testPlant,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)

	s := store.sessions[resp.SessionID]
	require.NotNil(t, s)
	assert.Equal(t, entity.ModeIN, s.Mode, "mode is upper-cased")
	assert.Equal(t, entity.SessionStatusActive, s.Status, "strict variant: sessions start active")
	require.NotNil(t, s.TotalQty)
	assert.Equal(t, 5, *s.TotalQty)
	assert.Equal(t, 0, s.ScannedQty)
}

func TestStart_AdHocMaintSessionIsUnbounded(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)

	resp, err := uc.Start(context.Background(), "op", dto.StartSessionRequest{Mode: "MAINT", PlantID: testPlant})
	require.NoError(t, err)

	s := store.sessions[resp.SessionID]
	assert.Nil(t, s.DocumentNo)
	assert.Nil(t, s.TotalQty)
}

func TestStart_DuplicateDocumentRejected(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)

	_, err := uc.Start(context.Background(), "op", dto.StartSessionRequest{
		Mode: "OUT", DocumentNo: "INV-9", TotalQty: 3, PlantID: testPlant,
	})
	require.NoError(t, err)

	// Same document still open at the same plant.
	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{
		Mode: "OUT", DocumentNo: "INV-9", TotalQty: 3, PlantID: testPlant,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateDocument)

	// Completed documents may not reopen either.
	for _, s := range store.sessions {
		s.Status = entity.SessionStatusCompleted
	}
	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{
		Mode: "OUT", DocumentNo: "INV-9", TotalQty: 3, PlantID: testPlant,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateDocument)

	// Same document at another plant is fine.
	_, err = uc.Start(context.Background(), "op", dto.StartSessionRequest{
		Mode: "OUT", DocumentNo: "INV-9", TotalQty: 3, PlantID: "NAGPUR2",
	})
	assert.NoError(t, err)
}

func TestClose_ShortQuantityAttachesRemark(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)
	qty := 5
	doc := "INV-5"
	store.sessions["s1"] = &entity.Session{
		ID: "s1", Mode: entity.ModeOUT, DocumentNo: &doc, TotalQty: &qty,
		ScannedQty: 3, PlantID: testPlant, CreatedBy: "op",
		Status: entity.SessionStatusActive, CreatedAt: time.Now(),
	}

	resp, err := uc.Close(context.Background(), dto.CloseSessionRequest{SessionID: "s1"})
	require.NoError(t, err)
	assert.True(t, resp.CompletedWithRemark)
	require.NotNil(t, resp.Remark)
	assert.Equal(t, "2 qty short against document", *resp.Remark)
	assert.Equal(t, entity.SessionStatusCompleted, store.sessions["s1"].Status)
	assert.Equal(t, "2 qty short against document", store.sessions["s1"].Remark)

	// Double close is a conflict, never a silent no-op.
	_, err = uc.Close(context.Background(), dto.CloseSessionRequest{SessionID: "s1"})
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}

func TestClose_FullQuantityClosesClean(t *testing.T) {
	store := newMemSessions()
	uc := newUC(store)
	qty := 3
	store.sessions["s1"] = &entity.Session{
		ID: "s1", Mode: entity.ModeIN, TotalQty: &qty, ScannedQty: 3,
		PlantID: testPlant, CreatedBy: "op", Status: entity.SessionStatusActive,
	}

	resp, err := uc.Close(context.Background(), dto.CloseSessionRequest{SessionID: "s1"})
	require.NoError(t, err)
	assert.False(t, resp.CompletedWithRemark)
	assert.Nil(t, resp.Remark)
	assert.Empty(t, store.sessions["s1"].Remark)
}

func TestClose_UnknownSession(t *testing.T) {
	uc := newUC(newMemSessions())
	_, err := uc.Close(context.Background(), dto.CloseSessionRequest{SessionID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
