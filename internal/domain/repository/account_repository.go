package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account.
// GetByNameKey busca por la clave natural normalizada (ver pkg/naturalkey);
// devuelve nil sin error si no hay coincidencia.
type AccountRepository interface {
	Insert(account *entity.Account) error
	GetByID(orgID, id string) (*entity.Account, error)
	GetByNameKey(orgID, nameKey string) (*entity.Account, error)
	ListByOrg(orgID string, limit, offset int) ([]*entity.Account, error)
	Update(account *entity.Account) error
	Upsert(account *entity.Account) error
	Delete(orgID, id string) error
}
