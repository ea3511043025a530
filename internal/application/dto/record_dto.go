package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Contacts ──────────────────────────────────────────────────────────────────

// CreateContactRequest body para POST /api/contacts.
type CreateContactRequest struct {
	AccountID string `json:"account_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// DeriveAndLinkRequest body para POST /api/contacts/derive-link.
// Por cada contacto se resuelve (o crea) una Account cuyo nombre es el
// apellido del contacto, y se enlaza el contacto a esa cuenta.
type DeriveAndLinkRequest struct {
	Contacts []CreateContactRequest `json:"contacts"`
}

// ContactResponse contacto en respuestas.
type ContactResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	AccountID string    `json:"account_id,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Opportunities ─────────────────────────────────────────────────────────────

// CreateOpportunityRequest body para POST /api/opportunities.
type CreateOpportunityRequest struct {
	AccountID string          `json:"account_id,omitempty"`
	Name      string          `json:"name"`
	StageName string          `json:"stage_name"`
	CloseDate string          `json:"close_date"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount"`
}

// OpportunityUpsertItem item parcial para el bulk upsert con defaults.
// ID vacío = insert; ID presente = update. StageName, CloseDate y Amount
// se sobreescriben siempre con los defaults del caso de uso.
type OpportunityUpsertItem struct {
	ID        string `json:"id,omitempty"`
	AccountID string `json:"account_id,omitempty"`
	Name      string `json:"name"`
}

// BulkUpsertOpportunitiesRequest body para POST /api/opportunities/bulk-upsert.
type BulkUpsertOpportunitiesRequest struct {
	Items []OpportunityUpsertItem `json:"items"`
}

// OpportunityResponse oportunidad en respuestas.
type OpportunityResponse struct {
	ID        string          `json:"id"`
	OrgID     string          `json:"org_id"`
	AccountID string          `json:"account_id,omitempty"`
	Name      string          `json:"name"`
	StageName string          `json:"stage_name"`
	CloseDate string          `json:"close_date"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ── Leads / Cases ─────────────────────────────────────────────────────────────

// CreateLeadRequest body para POST /api/leads.
// LastName y Company son obligatorios (un lead sin compañía no es accionable).
type CreateLeadRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email,omitempty"`
}

// LeadResponse lead en respuestas.
type LeadResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadRoundTripRequest body para POST /api/leads/bulk-roundtrip.
// Cada display name tiene el formato "First Last, Company"; si falta el
// segmento de compañía se genera "<Last> Co.".
type LeadRoundTripRequest struct {
	DisplayNames []string `json:"display_names"`
}

// CaseRoundTripRequest body para POST /api/cases/bulk-roundtrip.
type CaseRoundTripRequest struct {
	AccountID string `json:"account_id"`
	Count     int    `json:"count"`
	Subject   string `json:"subject,omitempty"`
}

// RoundTripResponse resultado de un ciclo bulk insert + bulk delete.
// Tras la llamada no queda ningún registro persistido.
type RoundTripResponse struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}
