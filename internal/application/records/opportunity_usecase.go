package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// Defaults aplicados por BulkUpsertWithDefaults a TODOS los items,
// sin importar lo que traigan.
const (
	defaultStage          = entity.StageQualification
	defaultCloseDateAddMo = 3 // hoy + 3 meses
)

var defaultAmount = decimal.NewFromInt(50000)

// closeDateLayout formato de fecha en DTOs (YYYY-MM-DD).
const closeDateLayout = "2006-01-02"

// OpportunityUseCase alta simple y bulk upsert con defaults de oportunidades.
type OpportunityUseCase struct {
	repo repository.OpportunityRepository
	tx   TxRunner
}

// NewOpportunityUseCase construye el caso de uso.
func NewOpportunityUseCase(repo repository.OpportunityRepository, tx TxRunner) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo, tx: tx}
}

// Create crea una oportunidad. Name, StageName y CloseDate son obligatorios.
func (uc *OpportunityUseCase) Create(orgID string, in dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if in.Name == "" || in.StageName == "" || in.CloseDate == "" {
		return nil, domain.ErrInvalidInput
	}
	closeDate, err := time.Parse(closeDateLayout, in.CloseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	opp := &entity.Opportunity{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		AccountID: in.AccountID,
		Name:      in.Name,
		StageName: in.StageName,
		CloseDate: closeDate,
		Amount:    in.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Insert(opp); err != nil {
		return nil, err
	}
	return entityToOpportunityResponse(opp), nil
}

// GetByID obtiene una oportunidad por ID. Devuelve nil sin error si no existe.
func (uc *OpportunityUseCase) GetByID(orgID, id string) (*dto.OpportunityResponse, error) {
	opp, err := uc.repo.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, nil
	}
	return entityToOpportunityResponse(opp), nil
}

// BulkUpsertWithDefaults aplica a cada item los defaults del pipeline
// (StageName "Qualification", CloseDate hoy+3 meses, Amount 50000) y hace UN
// solo upsert bulk: item con ID = update, sin ID = insert. La llamada corre en
// transacción, así que falla o aplica completa. El orden del resultado es el
// de entrada (la API bulk no garantiza orden de retorno del store).
func (uc *OpportunityUseCase) BulkUpsertWithDefaults(ctx context.Context, orgID string, items []dto.OpportunityUpsertItem) ([]dto.OpportunityResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	closeDate := now.AddDate(0, defaultCloseDateAddMo, 0)

	opps := make([]*entity.Opportunity, 0, len(items))
	for _, it := range items {
		if it.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		opps = append(opps, &entity.Opportunity{
			ID:        id,
			OrgID:     orgID,
			AccountID: it.AccountID,
			Name:      it.Name,
			StageName: defaultStage,
			CloseDate: closeDate,
			Amount:    defaultAmount,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunRecords(ctx, func(
		_ repository.AccountRepository,
		_ repository.ContactRepository,
		oppRepo repository.OpportunityRepository,
	) error {
		return oppRepo.UpsertMany(opps)
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.OpportunityResponse, 0, len(opps))
	for _, o := range opps {
		out = append(out, *entityToOpportunityResponse(o))
	}
	return out, nil
}

func entityToOpportunityResponse(o *entity.Opportunity) *dto.OpportunityResponse {
	if o == nil {
		return nil
	}
	return &dto.OpportunityResponse{
		ID:        o.ID,
		OrgID:     o.OrgID,
		AccountID: o.AccountID,
		Name:      o.Name,
		StageName: o.StageName,
		CloseDate: o.CloseDate.Format(closeDateLayout),
		Amount:    o.Amount,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
