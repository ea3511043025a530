package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo implementación de CaseRepository (usable con pool o tx).
type CaseRepo struct {
	q Querier
}

// NewCaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCaseRepository(q Querier) *CaseRepo {
	return &CaseRepo{q: q}
}

// InsertMany inserta la lista en UNA llamada bulk (pgx.Batch).
// Ejecutar dentro de TxRunner para que la llamada sea atómica.
func (r *CaseRepo) InsertMany(cases []*entity.Case) error {
	if len(cases) == 0 {
		return nil
	}
	query := `
		INSERT INTO cases (id, org_id, account_id, subject, status, origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	batch := &pgx.Batch{}
	for _, c := range cases {
		batch.Queue(query, c.ID, c.OrgID, c.AccountID, c.Subject, c.Status, c.Origin, c.CreatedAt, c.UpdatedAt)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range cases {
		if _, err := br.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert cases: %w", err)
		}
	}
	return nil
}

// ListByAccount lista los casos ligados a una cuenta.
func (r *CaseRepo) ListByAccount(orgID, accountID string) ([]*entity.Case, error) {
	query := `
		SELECT id, org_id, account_id, subject, status, origin, created_at, updated_at
		FROM cases WHERE org_id = $1 AND account_id = $2 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orgID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Case
	for rows.Next() {
		var c entity.Case
		if err := rows.Scan(&c.ID, &c.OrgID, &c.AccountID, &c.Subject, &c.Status, &c.Origin,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteMany elimina por ID la lista completa en una sola sentencia.
func (r *CaseRepo) DeleteMany(orgID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cases WHERE org_id = $1 AND id = ANY($2)`, orgID, ids)
	if err != nil {
		return fmt.Errorf("delete cases: %w", err)
	}
	return nil
}
