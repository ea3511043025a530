package dto

import "time"

// CreateOrganizationRequest body para POST /api/orgs.
type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

// OrganizationResponse organización en respuestas.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationListResponse listado paginado de organizaciones.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
