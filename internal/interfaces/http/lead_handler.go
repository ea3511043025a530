package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// LeadHandler maneja las peticiones HTTP de leads (protegido).
type LeadHandler struct {
	uc *records.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *records.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lead, err := h.uc.Create(orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "last_name y company son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// BulkRoundTrip POST /api/leads/bulk-roundtrip
// Inserta los leads generados en una llamada bulk y los borra en otra;
// no queda estado persistido al terminar.
func (h *LeadHandler) BulkRoundTrip(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.LeadRoundTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BulkCreateThenDelete(c.Context(), orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "display_names no puede estar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
