package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Insert(lead *entity.Lead) error
	InsertMany(leads []*entity.Lead) error
	GetByID(orgID, id string) (*entity.Lead, error)
	ListByOrg(orgID string, limit, offset int) ([]*entity.Lead, error)
	DeleteMany(orgID string, ids []string) error
}
