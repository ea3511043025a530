package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (auth).
// No hay búsqueda global por email: el email solo es único por organización,
// así que toda resolución de usuarios va scoped por org.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmailAndOrg(email, orgID string) (*entity.User, error)
}
