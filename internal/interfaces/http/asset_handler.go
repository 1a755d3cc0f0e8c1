package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/application/maintenance"
	"github.com/Nilp45/asset-tracker-backend/internal/application/usecase"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// AssetHandler handles asset provisioning, search and the PM pending list.
type AssetHandler struct {
	uc    *usecase.AssetUseCase
	pmDue *maintenance.PMDueUseCase
}

func NewAssetHandler(uc *usecase.AssetUseCase, pmDue *maintenance.PMDueUseCase) *AssetHandler {
	return &AssetHandler{uc: uc, pmDue: pmDue}
}

// AddBatch godoc
// @Summary      Provision a batch of assets (admin)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddAssetsRequest  true  "asset_type, quantity, customer, plant_id"
// @Success      201   {object}  dto.AddAssetsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/assets [post]
func (h *AssetHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddAssetsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddBatch(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asset_type, customer, plant_id and a positive quantity are required"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLANT_NOT_FOUND", Message: "plant does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Search assets
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        asset_id    query  string  false  "exact scan code"
// @Param        plant_id    query  string  false  "plant code"
// @Param        asset_type  query  string  false  "asset type"
// @Success      200  {array}   dto.AssetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) Search(c *fiber.Ctx) error {
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}
	out, err := h.uc.Search(c.Context(), repository.AssetSearchFilter{
		AssetID:   c.Query("asset_id"),
		PlantID:   plantID,
		AssetType: c.Query("asset_type"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Locate godoc
// @Summary      Current location of one asset
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        asset_id  query  string  true   "exact scan code"
// @Param        plant_id  query  string  false  "plant code (admins must pass it)"
// @Success      200  {object}  dto.AssetLocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/location [get]
func (h *AssetHandler) Locate(c *fiber.Ctx) error {
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}
	out, err := h.uc.Locate(c.Context(), c.Query("asset_id"), plantID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asset_id is required"})
		}
		if errors.Is(err, domain.ErrAssetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ASSET_NOT_FOUND", Message: "asset not found at this plant"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PMPending godoc
// @Summary      Assets due for preventive maintenance
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        plant_id  query  string  false  "plant code (admins must pass it)"
// @Success      200  {array}   dto.PMDueAssetDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/assets/pm-pending [get]
func (h *AssetHandler) PMPending(c *fiber.Ctx) error {
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}
	out, err := h.pmDue.ListDue(c.Context(), plantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
