package entity

import "time"

// Account representa una cuenta CRM (empresa cliente o prospecto).
// Name actúa como clave natural de facto para los flujos get-or-create:
// la tabla NO tiene índice único sobre el nombre, así que dos llamadas
// concurrentes pueden crear duplicados (limitación documentada).
type Account struct {
	ID          string
	OrgID       string
	Name        string
	NameKey     string // Name normalizado (ver pkg/naturalkey), usado en búsquedas
	Industry    string
	BillingCity string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
