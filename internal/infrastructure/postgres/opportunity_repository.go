package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

// OpportunityRepo implementación de OpportunityRepository (usable con pool o tx).
// Amount es NUMERIC y se mapea a decimal.Decimal vía el codec registrado en el pool.
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

const upsertOpportunitySQL = `
	INSERT INTO opportunities (id, org_id, account_id, name, stage_name, close_date, amount, created_at, updated_at)
	VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		account_id = EXCLUDED.account_id, name = EXCLUDED.name,
		stage_name = EXCLUDED.stage_name, close_date = EXCLUDED.close_date,
		amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`

// Insert persiste una nueva oportunidad.
func (r *OpportunityRepo) Insert(opp *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, org_id, account_id, name, stage_name, close_date, amount, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		opp.ID, opp.OrgID, opp.AccountID, opp.Name, opp.StageName, opp.CloseDate, opp.Amount,
		opp.CreatedAt, opp.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// GetByID obtiene una oportunidad por ID. Devuelve nil sin error si no hay fila.
func (r *OpportunityRepo) GetByID(orgID, id string) (*entity.Opportunity, error) {
	query := `
		SELECT id, org_id, COALESCE(account_id, ''), name, stage_name, close_date, amount, created_at, updated_at
		FROM opportunities WHERE org_id = $1 AND id = $2`
	var o entity.Opportunity
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&o.ID, &o.OrgID, &o.AccountID, &o.Name, &o.StageName, &o.CloseDate, &o.Amount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return &o, nil
}

// ListByAccount lista las oportunidades ligadas a una cuenta.
func (r *OpportunityRepo) ListByAccount(orgID, accountID string) ([]*entity.Opportunity, error) {
	query := `
		SELECT id, org_id, COALESCE(account_id, ''), name, stage_name, close_date, amount, created_at, updated_at
		FROM opportunities WHERE org_id = $1 AND account_id = $2 ORDER BY close_date`
	rows, err := r.q.Query(context.Background(), query, orgID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Opportunity
	for rows.Next() {
		var o entity.Opportunity
		if err := rows.Scan(&o.ID, &o.OrgID, &o.AccountID, &o.Name, &o.StageName, &o.CloseDate,
			&o.Amount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpsertMany inserta-o-actualiza la lista en UNA llamada bulk (pgx.Batch).
// Ejecutar dentro de TxRunner para que la llamada sea atómica.
func (r *OpportunityRepo) UpsertMany(opps []*entity.Opportunity) error {
	if len(opps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, o := range opps {
		batch.Queue(upsertOpportunitySQL,
			o.ID, o.OrgID, o.AccountID, o.Name, o.StageName, o.CloseDate, o.Amount, o.CreatedAt, o.UpdatedAt)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range opps {
		if _, err := br.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("upsert opportunities: %w", err)
		}
	}
	return nil
}

// Delete elimina una oportunidad por ID.
func (r *OpportunityRepo) Delete(orgID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM opportunities WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	return nil
}
