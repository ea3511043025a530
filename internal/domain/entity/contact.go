package entity

import "time"

// Contact representa una persona de contacto asociada a una Account.
type Contact struct {
	ID        string
	OrgID     string
	AccountID string // FK a Account (puede quedar vacío hasta que se enlace)
	FirstName string
	LastName  string // obligatorio
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
