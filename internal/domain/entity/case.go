package entity

import "time"

// Estados de un caso de soporte.
const (
	CaseStatusNew    = "New"
	CaseStatusOpen   = "Open"
	CaseStatusClosed = "Closed"
)

// Case representa un caso de soporte ligado a una Account.
type Case struct {
	ID        string
	OrgID     string
	AccountID string // FK a Account
	Subject   string
	Status    string // ver constantes CaseStatus*
	Origin    string // web, phone, email
	CreatedAt time.Time
	UpdatedAt time.Time
}
