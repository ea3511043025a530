package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
	"github.com/jhoicas/crm-core-api/pkg/naturalkey"
)

// Marcadores que deja el flujo get-or-create en Description.
const (
	MarkerNewAccount     = "New Account"
	MarkerUpdatedAccount = "Updated Account"
)

// AccountUseCase operaciones de registro sobre cuentas: alta simple, update
// por ID, update condicional y get-or-create por clave natural (Name).
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea una cuenta. Name es obligatorio (domain.ErrInvalidInput si falta).
// Devuelve la cuenta con su ID generado.
func (uc *AccountUseCase) Create(orgID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.Account{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Name:        in.Name,
		NameKey:     naturalkey.Normalize(in.Name),
		Industry:    in.Industry,
		BillingCity: in.BillingCity,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Insert(account); err != nil {
		return nil, err
	}
	return entityToAccountResponse(account), nil
}

// GetByID obtiene una cuenta por ID. Devuelve nil sin error si no existe.
func (uc *AccountUseCase) GetByID(orgID, id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return entityToAccountResponse(account), nil
}

// List lista cuentas de la organización con paginación.
func (uc *AccountUseCase) List(orgID string, limit, offset int) (*dto.AccountListResponse, error) {
	list, err := uc.repo.ListByOrg(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAccountResponse(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza por ID los campos no vacíos del request.
// Devuelve domain.ErrNotFound si la cuenta no existe. Último write gana:
// no hay control de concurrencia optimista.
func (uc *AccountUseCase) Update(orgID, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		account.Name = in.Name
		account.NameKey = naturalkey.Normalize(in.Name)
	}
	if in.Industry != "" {
		account.Industry = in.Industry
	}
	if in.BillingCity != "" {
		account.BillingCity = in.BillingCity
	}
	if in.Description != "" {
		account.Description = in.Description
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return entityToAccountResponse(account), nil
}

// UpdateDescriptionIfExists actualización condicional: si la cuenta no existe
// loguea y retorna (nil, nil) en lugar de fallar — contrato intencionalmente
// más blando que Update, para llamadores que toleran targets ausentes.
func (uc *AccountUseCase) UpdateDescriptionIfExists(orgID, id, description string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		log.Warn().Str("org_id", orgID).Str("account_id", id).
			Msg("update condicional: la cuenta no existe, no-op")
		return nil, nil
	}
	account.Description = description
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return entityToAccountResponse(account), nil
}

// GetOrCreateByName busca una cuenta por su clave natural (Name normalizado).
// Si existe, marca Description como "Updated Account" y hace upsert; si no,
// crea la cuenta con Description "New Account". Devuelve el registro con ID.
//
// Patrón read-then-write con ventana TOCTOU: ninguna transacción ni lock cubre
// la lectura y la escritura, así que dos llamadores concurrentes con el mismo
// nombre pueden crear cuentas duplicadas (limitación documentada).
func (uc *AccountUseCase) GetOrCreateByName(orgID, name string) (*dto.AccountResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	key := naturalkey.Normalize(name)
	now := time.Now()

	account, err := uc.repo.GetByNameKey(orgID, key)
	if err != nil {
		return nil, err
	}
	if account != nil {
		account.Description = MarkerUpdatedAccount
		account.UpdatedAt = now
		if err := uc.repo.Upsert(account); err != nil {
			return nil, err
		}
		return entityToAccountResponse(account), nil
	}

	account = &entity.Account{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Name:        name,
		NameKey:     key,
		Description: MarkerNewAccount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Upsert(account); err != nil {
		return nil, err
	}
	return entityToAccountResponse(account), nil
}

// Delete elimina una cuenta por ID.
func (uc *AccountUseCase) Delete(orgID, id string) error {
	return uc.repo.Delete(orgID, id)
}

func entityToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:          a.ID,
		OrgID:       a.OrgID,
		Name:        a.Name,
		Industry:    a.Industry,
		BillingCity: a.BillingCity,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
