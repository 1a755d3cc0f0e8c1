package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/application/usecase"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
)

// PlantHandler handles admin plant management.
type PlantHandler struct {
	uc *usecase.PlantUseCase
}

func NewPlantHandler(uc *usecase.PlantUseCase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// Create godoc
// @Summary      Create a plant (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantRequest  true  "plant_id, plant_name"
// @Success      201   {object}  dto.PlantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/plants [post]
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plant_id and plant_name are required"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLANT_EXISTS", Message: "plant code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List plants
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "active plants only"
// @Success      200  {array}  dto.PlantResponse
// @Router       /api/admin/plants [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("active"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Toggle a plant's active flag (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        plant_id  path  string  true  "plant code"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/plants/{plant_id}/toggle [post]
func (h *PlantHandler) Toggle(c *fiber.Ctx) error {
	if err := h.uc.Toggle(c.Context(), c.Params("plant_id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plant not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "plant updated"})
}
