package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// OpportunityRepository define el puerto de persistencia para Opportunity.
// UpsertMany aplica insert-or-update por ID en una sola llamada bulk.
type OpportunityRepository interface {
	Insert(opp *entity.Opportunity) error
	GetByID(orgID, id string) (*entity.Opportunity, error)
	ListByAccount(orgID, accountID string) ([]*entity.Opportunity, error)
	UpsertMany(opps []*entity.Opportunity) error
	Delete(orgID, id string) error
}
