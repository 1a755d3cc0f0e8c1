package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/challan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
)

// ChallanHandler assembles delivery challans for completed sessions.
type ChallanHandler struct {
	uc *challan.UseCase
}

func NewChallanHandler(uc *challan.UseCase) *ChallanHandler {
	return &ChallanHandler{uc: uc}
}

// ByInvoice godoc
// @Summary      Challan for a completed document
// @Tags         challan
// @Security     Bearer
// @Produce      json
// @Param        invoice   query  string  true   "document number"
// @Param        plant_id  query  string  false  "plant code (admins must pass it)"
// @Success      200  {object}  dto.ChallanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challan [get]
func (h *ChallanHandler) ByInvoice(c *fiber.Ctx) error {
	invoice := c.Query("invoice")
	if invoice == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice is required"})
	}
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}
	out, err := h.uc.ByInvoice(c.Context(), plantID, invoice)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no completed session with scans for this document"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SaveTransport godoc
// @Summary      Attach transport details to a completed document
// @Tags         challan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveTransportRequest  true  "invoice, plant_id, transport fields"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/challan/transport [post]
func (h *ChallanHandler) SaveTransport(c *fiber.Ctx) error {
	var in dto.SaveTransportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	plantID, err := resolvePlant(c, in.PlantID)
	if err != nil {
		return plantScopeError(c, err)
	}
	in.PlantID = plantID

	if err := h.uc.SaveTransport(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice and plant_id are required"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "document not found at this plant"})
		}
		if errors.Is(err, domain.ErrSessionClosed) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_COMPLETED", Message: "transport details apply to completed sessions only"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "transport details saved"})
}
