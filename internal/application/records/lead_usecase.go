package records

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// LeadUseCase alta simple de leads y el ciclo bulk create→delete generado
// desde display names. Las operaciones bulk pasan por el TxRunner, que entrega
// los repositorios ligados a la transacción.
type LeadUseCase struct {
	repo repository.LeadRepository
	tx   TxRunner
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, tx TxRunner) *LeadUseCase {
	return &LeadUseCase{repo: repo, tx: tx}
}

// Create crea un lead. LastName y Company son obligatorios.
func (uc *LeadUseCase) Create(orgID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.LastName == "" || in.Company == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   in.Company,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Insert(lead); err != nil {
		return nil, err
	}
	return entityToLeadResponse(lead), nil
}

// BulkCreateThenDelete construye un lead por cada display name
// ("First Last, Company"), los inserta todos en UNA llamada bulk y acto
// seguido los borra en otra. Demuestra los dos verbos en secuencia: el estado
// persistido neto al terminar es vacío. Insert y delete son dos llamadas
// separadas (cada una transaccional por sí misma), así que los leads son
// visibles transitoriamente entre ambas.
func (uc *LeadUseCase) BulkCreateThenDelete(ctx context.Context, orgID string, in dto.LeadRoundTripRequest) (*dto.RoundTripResponse, error) {
	if len(in.DisplayNames) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	leads := make([]*entity.Lead, 0, len(in.DisplayNames))
	ids := make([]string, 0, len(in.DisplayNames))
	for _, dn := range in.DisplayNames {
		first, last, company, err := splitDisplayName(dn)
		if err != nil {
			return nil, err
		}
		id := uuid.New().String()
		ids = append(ids, id)
		leads = append(leads, &entity.Lead{
			ID:        id,
			OrgID:     orgID,
			FirstName: first,
			LastName:  last,
			Company:   company,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunRoundTrip(ctx, func(leadRepo repository.LeadRepository, _ repository.CaseRepository) error {
		return leadRepo.InsertMany(leads)
	})
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunRoundTrip(ctx, func(leadRepo repository.LeadRepository, _ repository.CaseRepository) error {
		return leadRepo.DeleteMany(orgID, ids)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RoundTripResponse{Inserted: len(leads), Deleted: len(ids)}, nil
}

// splitDisplayName parte "First Last, Company" en los campos del lead.
// Un solo token de nombre va a LastName (FirstName es opcional en un lead);
// sin segmento de compañía se genera "<Last> Co.".
func splitDisplayName(dn string) (first, last, company string, err error) {
	namePart := dn
	if i := strings.Index(dn, ","); i >= 0 {
		namePart = dn[:i]
		company = strings.TrimSpace(dn[i+1:])
	}
	tokens := strings.Fields(namePart)
	if len(tokens) == 0 {
		return "", "", "", domain.ErrInvalidInput
	}
	if len(tokens) == 1 {
		last = tokens[0]
	} else {
		first = tokens[0]
		last = strings.Join(tokens[1:], " ")
	}
	if company == "" {
		company = last + " Co."
	}
	return first, last, company, nil
}

func entityToLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:        l.ID,
		OrgID:     l.OrgID,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Company:   l.Company,
		Email:     l.Email,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
