package repository

import "github.com/jhoicas/crm-core-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Insert(contact *entity.Contact) error
	GetByID(orgID, id string) (*entity.Contact, error)
	ListByAccount(orgID, accountID string) ([]*entity.Contact, error)
	UpsertMany(contacts []*entity.Contact) error
	Delete(orgID, id string) error
}
