package entity

import "time"

// Roles de usuario (deben coincidir con el CHECK de la tabla users).
const (
	RoleAdmin   = "admin"
	RoleSales   = "sales"
	RoleSupport = "support"
)

// User representa un usuario autenticable de una organización.
type User struct {
	ID           string
	OrgID        string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
