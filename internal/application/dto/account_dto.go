package dto

import "time"

// CreateAccountRequest body para POST /api/accounts.
type CreateAccountRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry,omitempty"`
	BillingCity string `json:"billing_city,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateAccountRequest body para PUT /api/accounts/:id.
// Solo los campos no vacíos se aplican (last write wins, sin control optimista).
type UpdateAccountRequest struct {
	Name        string `json:"name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	BillingCity string `json:"billing_city,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateDescriptionRequest body para POST /api/accounts/:id/description
// (actualización condicional: si la cuenta no existe, no-op).
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// GetOrCreateAccountRequest body para POST /api/accounts/get-or-create.
type GetOrCreateAccountRequest struct {
	Name string `json:"name"`
}

// AccountResponse cuenta en respuestas.
type AccountResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry,omitempty"`
	BillingCity string    `json:"billing_city,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountListResponse listado paginado de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
