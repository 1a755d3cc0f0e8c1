package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/analytics"
	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
)

// DashboardHandler serves the per-plant dashboard projection.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Plant dashboard summary
// @Description  Aging widgets, maintenance counters and the overall location
//               grid, computed on demand from the movement history.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        plant_id  query  string  false  "plant code (admins must pass it)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}
	out, err := h.uc.GetSummary(c.Context(), plantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
