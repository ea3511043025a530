package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (tenant).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
}
