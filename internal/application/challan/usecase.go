// Package challan assembles the delivery-challan payload for a completed
// document. Assembly only: rendering stays on the frontend.
package challan

import (
	"context"
	"time"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// UseCase builds challans and records transport details.
type UseCase struct {
	sessionRepo  repository.SessionRepository
	movementRepo repository.MovementRepository
	plantRepo    repository.PlantRepository
}

// NewUseCase builds the use case.
func NewUseCase(sessionRepo repository.SessionRepository, movementRepo repository.MovementRepository, plantRepo repository.PlantRepository) *UseCase {
	return &UseCase{sessionRepo: sessionRepo, movementRepo: movementRepo, plantRepo: plantRepo}
}

// ByInvoice assembles the challan for a completed document at a plant. A
// challan exists only after scanning completion and only when at least one
// asset was scanned.
func (uc *UseCase) ByInvoice(ctx context.Context, plantID, invoice string) (*dto.ChallanResponse, error) {
	if plantID == "" || invoice == "" {
		return nil, domain.ErrInvalidInput
	}

	session, err := uc.sessionRepo.FindCompletedByDocument(ctx, plantID, invoice)
	if err != nil {
		return nil, err
	}
	if session == nil || session.ScannedQty == 0 {
		return nil, domain.ErrNotFound
	}

	plant, err := uc.plantRepo.GetByPlantID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.movementRepo.ChallanItems(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}

	resp := &dto.ChallanResponse{
		Invoice:       invoice,
		TotalQty:      session.ScannedQty,
		PlantID:       plantID,
		PlantAddress:  plant.Address,
		Transporter:   session.Transporter,
		TransportMode: session.TransportMode,
		VehicleNo:     session.VehicleNo,
		ShipToAddress: session.ShipToAddress,
		Items:         make([]dto.ChallanItemDTO, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ChallanItemDTO{
			AssetType:   it.AssetType,
			Description: it.Description,
			Qty:         it.Qty,
		})
	}
	return resp, nil
}

// SaveTransport attaches transport details to a completed session so the
// challan can carry them.
func (uc *UseCase) SaveTransport(ctx context.Context, in dto.SaveTransportRequest) error {
	if in.PlantID == "" || in.Invoice == "" {
		return domain.ErrInvalidInput
	}
	session, err := uc.sessionRepo.FindCompletedByDocument(ctx, in.PlantID, in.Invoice)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrSessionClosed
	}
	session.Transporter = in.Transporter
	session.TransportMode = in.TransportMode
	session.VehicleNo = in.VehicleNo
	session.ShipToAddress = in.ShipToAddress
	session.UpdatedAt = time.Now()
	return uc.sessionRepo.Save(ctx, session)
}
