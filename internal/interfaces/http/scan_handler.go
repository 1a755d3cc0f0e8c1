package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/application/scan"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
)

// ScanHandler handles barcode scan submissions.
type ScanHandler struct {
	uc *scan.RecordScanUseCase
}

func NewScanHandler(uc *scan.RecordScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Record godoc
// @Summary      Record one barcode scan against a session
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "session_id, asset_id, plant_id"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Record(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	plantID, err := resolvePlant(c, in.PlantID)
	if err != nil {
		return plantScopeError(c, err)
	}
	in.PlantID = plantID

	out, err := h.uc.RecordScan(c.Context(), GetUsername(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			scansRejected.WithLabelValues("validation").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_id, asset_id and plant_id are required"})
		case errors.Is(err, domain.ErrNotFound):
			scansRejected.WithLabelValues("session_not_found").Inc()
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "session not found"})
		case errors.Is(err, domain.ErrAssetNotFound):
			scansRejected.WithLabelValues("asset_not_found").Inc()
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ASSET_NOT_FOUND", Message: "asset not found at this plant"})
		case errors.Is(err, domain.ErrSessionClosed):
			scansRejected.WithLabelValues("session_closed").Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "session is not accepting scans"})
		case errors.Is(err, domain.ErrPlantMismatch):
			scansRejected.WithLabelValues("plant_mismatch").Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLANT_MISMATCH", Message: "scan plant does not match the session plant"})
		case errors.Is(err, domain.ErrDuplicateScan):
			scansRejected.WithLabelValues("duplicate").Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SCAN", Message: "asset already scanned in this session"})
		case errors.Is(err, domain.ErrInvalidTransition):
			scansRejected.WithLabelValues("invalid_transition").Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	scansAccepted.WithLabelValues(out.Mode).Inc()
	if out.Completed {
		sessionsCompleted.Inc()
	}
	return c.JSON(out)
}
