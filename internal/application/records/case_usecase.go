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

// maxRoundTripCases tope de casos por ciclo create→delete.
const maxRoundTripCases = 200

// CaseUseCase ciclo bulk create→delete de N casos idénticos ligados a una cuenta.
type CaseUseCase struct {
	accounts repository.AccountRepository
	tx       TxRunner
}

// NewCaseUseCase construye el caso de uso.
func NewCaseUseCase(accounts repository.AccountRepository, tx TxRunner) *CaseUseCase {
	return &CaseUseCase{accounts: accounts, tx: tx}
}

// BulkCreateThenDelete genera Count casos idénticos ligados a la cuenta
// indicada, los inserta en UNA llamada bulk y los borra en otra. Devuelve
// domain.ErrNotFound si la cuenta no existe y domain.ErrInvalidInput si Count
// está fuera de rango. El estado persistido neto al terminar es vacío.
func (uc *CaseUseCase) BulkCreateThenDelete(ctx context.Context, orgID string, in dto.CaseRoundTripRequest) (*dto.RoundTripResponse, error) {
	if in.Count <= 0 || in.Count > maxRoundTripCases {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accounts.GetByID(orgID, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	subject := in.Subject
	if subject == "" {
		subject = "Caso generado - " + account.Name
	}

	now := time.Now()
	cases := make([]*entity.Case, 0, in.Count)
	ids := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		id := uuid.New().String()
		ids = append(ids, id)
		cases = append(cases, &entity.Case{
			ID:        id,
			OrgID:     orgID,
			AccountID: account.ID,
			Subject:   subject,
			Status:    entity.CaseStatusNew,
			Origin:    "web",
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err = uc.tx.RunRoundTrip(ctx, func(_ repository.LeadRepository, caseRepo repository.CaseRepository) error {
		return caseRepo.InsertMany(cases)
	})
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunRoundTrip(ctx, func(_ repository.LeadRepository, caseRepo repository.CaseRepository) error {
		return caseRepo.DeleteMany(orgID, ids)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RoundTripResponse{Inserted: len(cases), Deleted: len(ids)}, nil
}
