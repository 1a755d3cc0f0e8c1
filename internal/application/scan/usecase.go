package scan

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
	"github.com/Nilp45/asset-tracker-backend/internal/domain/tracking"
)

// RecordScanUseCase accepts or rejects one barcode scan. Everything — session
// lock, duplicate check, transition validation, movement append, duty-cycle
// update and quantity reconciliation — happens inside a single transaction,
// so a rejected scan leaves no partial writes and two concurrent scans of the
// same asset into one session cannot both land.
type RecordScanUseCase struct {
	txRunner TxRunner
}

// NewRecordScanUseCase builds the use case.
func NewRecordScanUseCase(txRunner TxRunner) *RecordScanUseCase {
	return &RecordScanUseCase{txRunner: txRunner}
}

// RecordScan processes one scan by the given user.
//
// Accept path, in order: lock session row (per-session serialization), session
// must be active and at the scanned plant, asset must exist active at that
// plant (row locked), no earlier scan of this asset in this session, the
// movement must be legal for the asset's current location. On accept: append
// the movement, mutate the asset (IN bumps the duty cycle, OK resets it and
// stamps last-OK; the current location always follows the mode), bump the
// session's scanned quantity and auto-complete when the target is reached.
func (uc *RecordScanUseCase) RecordScan(ctx context.Context, byUser string, in dto.ScanRequest) (*dto.ScanResponse, error) {
	assetID := strings.ToUpper(strings.TrimSpace(in.AssetID))
	if in.SessionID == "" || assetID == "" || in.PlantID == "" || byUser == "" {
		return nil, domain.ErrInvalidInput
	}

	var resp dto.ScanResponse
	err := uc.txRunner.Run(ctx, func(
		sessionRepo repository.SessionRepository,
		assetRepo repository.AssetRepository,
		movementRepo repository.MovementRepository,
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
		if session.PlantID != in.PlantID {
			return domain.ErrPlantMismatch
		}

		asset, err := assetRepo.FindActiveForUpdate(ctx, assetID, session.PlantID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}

		dup, err := movementRepo.Exists(ctx, session.ID, assetID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateScan
		}

		if d := tracking.Validate(asset.CurrentLocation, session.Mode); !d.Allowed {
			return fmt.Errorf("%w: %s", domain.ErrInvalidTransition, d.Reason)
		}

		now := time.Now()
		movement := &entity.Movement{
			ID:           uuid.New().String(),
			SessionID:    session.ID,
			AssetID:      assetID,
			PlantID:      session.PlantID,
			Mode:         session.Mode,
			ByUser:       byUser,
			MovementTime: now,
			CreatedAt:    now,
		}
		// The unique (session, asset) index backs up the Exists check against
		// concurrent duplicates; the repository maps the violation to
		// ErrDuplicateScan.
		if err := movementRepo.Append(ctx, movement); err != nil {
			return err
		}

		switch session.Mode {
		case entity.ModeIN:
			asset.CycleSinceOK++
		case entity.ModeOK:
			asset.CycleSinceOK = 0
			asset.LastOKAt = &now
		}
		asset.CurrentLocation = tracking.LocationAfter(session.Mode)
		asset.UpdatedAt = now
		if err := assetRepo.Save(ctx, asset); err != nil {
			return err
		}

		session.ScannedQty++
		if session.TotalQty != nil && session.ScannedQty >= *session.TotalQty {
			session.Status = entity.SessionStatusCompleted
		}
		session.UpdatedAt = now
		if err := sessionRepo.Save(ctx, session); err != nil {
			return err
		}

		resp = dto.ScanResponse{
			ScannedQty:   session.ScannedQty,
			RemainingQty: session.RemainingQty(),
			Completed:    session.Status == entity.SessionStatusCompleted,
			AssetID:      assetID,
			Mode:         string(session.Mode),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
