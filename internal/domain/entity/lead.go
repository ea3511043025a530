package entity

import "time"

// Lead representa un prospecto sin calificar (aún no convertido en Account/Contact).
// LastName y Company son obligatorios; FirstName es opcional.
type Lead struct {
	ID        string
	OrgID     string
	FirstName string
	LastName  string
	Company   string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
