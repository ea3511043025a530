package entity

import "time"

// Organization representa un tenant del CRM (estilo "org" de Salesforce).
// Todos los registros CRM (Account, Contact, etc.) están scoped por OrgID.
type Organization struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
