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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Insert persiste un nuevo lead.
func (r *LeadRepo) Insert(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, org_id, first_name, last_name, company, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.OrgID, lead.FirstName, lead.LastName, lead.Company, lead.Email,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// InsertMany inserta la lista en UNA llamada bulk (pgx.Batch).
// Ejecutar dentro de TxRunner para que la llamada sea atómica.
func (r *LeadRepo) InsertMany(leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	query := `
		INSERT INTO leads (id, org_id, first_name, last_name, company, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	batch := &pgx.Batch{}
	for _, l := range leads {
		batch.Queue(query, l.ID, l.OrgID, l.FirstName, l.LastName, l.Company, l.Email, l.CreatedAt, l.UpdatedAt)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range leads {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert leads: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un lead por ID. Devuelve nil sin error si no hay fila.
func (r *LeadRepo) GetByID(orgID, id string) (*entity.Lead, error) {
	query := `
		SELECT id, org_id, first_name, last_name, company, email, created_at, updated_at
		FROM leads WHERE org_id = $1 AND id = $2`
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&l.ID, &l.OrgID, &l.FirstName, &l.LastName, &l.Company, &l.Email, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// ListByOrg lista leads de la organización con paginación.
func (r *LeadRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT id, org_id, first_name, last_name, company, email, created_at, updated_at
		FROM leads WHERE org_id = $1 ORDER BY last_name, first_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.OrgID, &l.FirstName, &l.LastName, &l.Company, &l.Email,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteMany elimina por ID la lista completa en una sola sentencia.
func (r *LeadRepo) DeleteMany(orgID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM leads WHERE org_id = $1 AND id = ANY($2)`, orgID, ids)
	if err != nil {
		return fmt.Errorf("delete leads: %w", err)
	}
	return nil
}
