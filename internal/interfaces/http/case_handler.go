package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// CaseHandler maneja las peticiones HTTP de casos (protegido).
type CaseHandler struct {
	uc *records.CaseUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *records.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// BulkRoundTrip POST /api/cases/bulk-roundtrip
func (h *CaseHandler) BulkRoundTrip(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.CaseRoundTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BulkCreateThenDelete(c.Context(), orgID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count debe estar entre 1 y 200"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
