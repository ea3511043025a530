package records

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// ContactUseCase alta simple de contactos y el flujo derive-and-link:
// derivar la cuenta padre desde el apellido del contacto.
type ContactUseCase struct {
	repo     repository.ContactRepository
	accounts *AccountUseCase
	tx       TxRunner
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, accounts *AccountUseCase, tx TxRunner) *ContactUseCase {
	return &ContactUseCase{repo: repo, accounts: accounts, tx: tx}
}

// Create crea un contacto. LastName es obligatorio.
func (uc *ContactUseCase) Create(orgID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		AccountID: in.AccountID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Insert(contact); err != nil {
		return nil, err
	}
	return entityToContactResponse(contact), nil
}

// ListByAccount lista los contactos de una cuenta.
func (uc *ContactUseCase) ListByAccount(orgID, accountID string) ([]dto.ContactResponse, error) {
	list, err := uc.repo.ListByAccount(orgID, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *entityToContactResponse(c))
	}
	return out, nil
}

// DeriveAndLink: por cada contacto deriva la clave de enlace desde su propio
// apellido, resuelve o crea la cuenta padre vía get-or-create, fija AccountID
// y al terminar el loop hace UN solo upsert bulk de todos los contactos.
//
// Son N round trips get-or-create secuenciales antes del upsert bulk: los
// hermanos que comparten apellido deben resolver a la MISMA cuenta, y el loop
// secuencial lo garantiza sin coordinación extra.
func (uc *ContactUseCase) DeriveAndLink(ctx context.Context, orgID string, in dto.DeriveAndLinkRequest) ([]dto.ContactResponse, error) {
	if len(in.Contacts) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, c := range in.Contacts {
		if c.LastName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	children := make([]*entity.Contact, 0, len(in.Contacts))
	for _, c := range in.Contacts {
		parent, err := uc.accounts.GetOrCreateByName(orgID, c.LastName)
		if err != nil {
			return nil, err
		}
		children = append(children, &entity.Contact{
			ID:        uuid.New().String(),
			OrgID:     orgID,
			AccountID: parent.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunRecords(ctx, func(
		_ repository.AccountRepository,
		contactRepo repository.ContactRepository,
		_ repository.OpportunityRepository,
	) error {
		return contactRepo.UpsertMany(children)
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ContactResponse, 0, len(children))
	for _, c := range children {
		out = append(out, *entityToContactResponse(c))
	}
	return out, nil
}

func entityToContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		OrgID:     c.OrgID,
		AccountID: c.AccountID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
