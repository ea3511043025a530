package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// CaseRepository define el puerto de persistencia para Case.
type CaseRepository interface {
	InsertMany(cases []*entity.Case) error
	ListByAccount(orgID, accountID string) ([]*entity.Case, error)
	DeleteMany(orgID string, ids []string) error
}
