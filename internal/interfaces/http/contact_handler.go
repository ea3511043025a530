package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// ContactHandler maneja las peticiones HTTP de contactos (protegido).
type ContactHandler struct {
	uc *records.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *records.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contact, err := h.uc.Create(orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "last_name es requerido y account_id debe existir"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// DeriveAndLink POST /api/contacts/derive-link
func (h *ContactHandler) DeriveAndLink(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.DeriveAndLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contacts, err := h.uc.DeriveAndLink(c.Context(), orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contacts no puede estar vacío y cada last_name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(contacts)
}

// ListByAccount GET /api/accounts/:id/contacts
func (h *ContactHandler) ListByAccount(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	list, err := h.uc.ListByAccount(orgID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
