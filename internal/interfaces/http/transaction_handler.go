package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/application/transaction"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
)

// TransactionHandler serves the movement register.
type TransactionHandler struct {
	uc *transaction.UseCase
}

func NewTransactionHandler(uc *transaction.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Movement register
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        plant_id     query  string  false  "plant code (admins must pass it)"
// @Param        asset_id     query  string  false  "exact scan code"
// @Param        mode         query  string  false  "IN, OUT, MAINT or OK"
// @Param        document_no  query  string  false  "document number"
// @Param        from         query  string  false  "RFC3339 lower bound"
// @Param        to           query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	plantID, err := resolvePlant(c, c.Query("plant_id"))
	if err != nil {
		return plantScopeError(c, err)
	}

	q := transaction.Query{
		PlantID:    plantID,
		AssetID:    c.Query("asset_id"),
		Mode:       c.Query("mode"),
		DocumentNo: c.Query("document_no"),
	}
	var parseErr error
	if q.From, parseErr = parseTimeQuery(c.Query("from")); parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC3339"})
	}
	if q.To, parseErr = parseTimeQuery(c.Query("to")); parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC3339"})
	}

	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plant_id is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
