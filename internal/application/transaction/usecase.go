// Package transaction serves the movement register: accepted scans joined
// with their documents, plus the short-quantity document list.
package transaction

import (
	"context"
	"time"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// UseCase read-only listing over movement history and completed sessions.
type UseCase struct {
	movementRepo repository.MovementRepository
	sessionRepo  repository.SessionRepository
}

// NewUseCase builds the use case.
func NewUseCase(movementRepo repository.MovementRepository, sessionRepo repository.SessionRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo, sessionRepo: sessionRepo}
}

// Query filters the register. PlantID is mandatory.
type Query struct {
	PlantID    string
	AssetID    string
	Mode       string
	DocumentNo string
	From       *time.Time
	To         *time.Time
}

// List returns the filtered register (newest first) together with the
// completed documents that closed short of their target.
func (uc *UseCase) List(ctx context.Context, q Query) (*dto.TransactionListResponse, error) {
	if q.PlantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if q.Mode != "" && !entity.Mode(q.Mode).Valid() {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.movementRepo.ListJoined(ctx, repository.MovementFilter{
		PlantID:    q.PlantID,
		AssetID:    q.AssetID,
		Mode:       entity.Mode(q.Mode),
		DocumentNo: q.DocumentNo,
		From:       q.From,
		To:         q.To,
	})
	if err != nil {
		return nil, err
	}

	shortDocs, err := uc.sessionRepo.ListShortQty(ctx, q.PlantID, q.DocumentNo)
	if err != nil {
		return nil, err
	}

	resp := &dto.TransactionListResponse{
		Transactions: make([]dto.TransactionRowDTO, 0, len(rows)),
		ShortQty:     make([]dto.ShortQtyDocDTO, 0, len(shortDocs)),
	}
	for _, r := range rows {
		resp.Transactions = append(resp.Transactions, dto.TransactionRowDTO{
			AssetID:      r.AssetID,
			AssetType:    r.AssetType,
			Description:  r.Description,
			Mode:         string(r.Mode),
			DocumentNo:   r.DocumentNo,
			PlantID:      r.PlantID,
			ByUser:       r.ByUser,
			MovementTime: r.MovementTime,
		})
	}
	for _, s := range shortDocs {
		resp.ShortQty = append(resp.ShortQty, dto.ShortQtyDocDTO{
			DocumentNo: s.DocumentNo,
			TotalQty:   s.TotalQty,
			ScannedQty: s.ScannedQty,
			PlantID:    s.PlantID,
			CreatedBy:  s.CreatedBy,
			Remark:     s.Remark,
			CreatedAt:  s.CreatedAt,
		})
	}
	return resp, nil
}
