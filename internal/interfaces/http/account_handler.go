package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// AccountHandler maneja las peticiones HTTP de cuentas (protegido).
type AccountHandler struct {
	uc     *records.AccountUseCase
	export *records.ExportUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *records.AccountUseCase, export *records.ExportUseCase) *AccountHandler {
	return &AccountHandler{uc: uc, export: export}
}

// Create POST /api/accounts
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.Create(orgID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// GetByID GET /api/accounts/:id
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	account, err := h.uc.GetByID(orgID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if account == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
	}
	return c.JSON(account)
}

// List GET /api/accounts?limit=20&offset=0
func (h *AccountHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(orgID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/accounts/:id
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.Update(orgID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(account)
}

// UpdateDescription POST /api/accounts/:id/description
// Contrato blando: si la cuenta no existe responde 200 con updated:false en
// lugar de 404 (el caso de uso loguea el no-op).
func (h *AccountHandler) UpdateDescription(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.UpdateDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.UpdateDescriptionIfExists(orgID, c.Params("id"), in.Description)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if account == nil {
		return c.JSON(fiber.Map{"updated": false})
	}
	return c.JSON(fiber.Map{"updated": true, "account": account})
}

// GetOrCreate POST /api/accounts/get-or-create
func (h *AccountHandler) GetOrCreate(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var in dto.GetOrCreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.GetOrCreateByName(orgID, in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(account)
}

// Delete DELETE /api/accounts/:id
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if err := h.uc.Delete(orgID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportXML GET /api/accounts/:id/export.xml
func (h *AccountHandler) ExportXML(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	data, err := h.export.AccountXML(orgID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}

// ExportPDF GET /api/accounts/:id/pdf
func (h *AccountHandler) ExportPDF(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	data, err := h.export.AccountPDF(c.Context(), orgID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
