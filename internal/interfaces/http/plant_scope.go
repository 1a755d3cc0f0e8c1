package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// resolvePlant settles which plant a request acts on. Operators are pinned
// to their token's plant and may not reach across; admins must say which
// plant they mean.
func resolvePlant(c *fiber.Ctx, requested string) (string, error) {
	if GetRole(c) == entity.RoleAdmin {
		if requested == "" {
			return "", domain.ErrInvalidInput
		}
		return requested, nil
	}
	own := GetPlantID(c)
	if own == "" {
		return "", domain.ErrForbidden
	}
	if requested != "" && requested != own {
		return "", domain.ErrForbidden
	}
	return own, nil
}

func plantScopeError(c *fiber.Ctx, err error) error {
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "plant not accessible"})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plant_id is required"})
}
