package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// OpportunityHandler maneja las peticiones HTTP de oportunidades (protegido).
type OpportunityHandler struct {
	uc *records.OpportunityUseCase
}

// NewOpportunityHandler construye el handler.
func NewOpportunityHandler(uc *records.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

// Create POST /api/opportunities
func (h *OpportunityHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.CreateOpportunityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	opp, err := h.uc.Create(orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, stage_name y close_date (YYYY-MM-DD) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(opp)
}

// GetByID GET /api/opportunities/:id
func (h *OpportunityHandler) GetByID(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	opp, err := h.uc.GetByID(orgID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if opp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oportunidad no encontrada"})
	}
	return c.JSON(opp)
}

// BulkUpsert POST /api/opportunities/bulk-upsert
func (h *OpportunityHandler) BulkUpsert(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.BulkUpsertOpportunitiesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	opps, err := h.uc.BulkUpsertWithDefaults(c.Context(), orgID, in.Items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío y cada name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(opps)
}
