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

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const upsertContactSQL = `
	INSERT INTO contacts (id, org_id, account_id, first_name, last_name, email, created_at, updated_at)
	VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		account_id = EXCLUDED.account_id, first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name, email = EXCLUDED.email,
		updated_at = EXCLUDED.updated_at`

// Insert persiste un nuevo contacto. Una referencia AccountID malformada
// (FK violation) se reporta como domain.ErrInvalidInput.
func (r *ContactRepo) Insert(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, org_id, account_id, first_name, last_name, email, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.OrgID, contact.AccountID, contact.FirstName, contact.LastName,
		contact.Email, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID. Devuelve nil sin error si no hay fila.
func (r *ContactRepo) GetByID(orgID, id string) (*entity.Contact, error) {
	query := `
		SELECT id, org_id, COALESCE(account_id, ''), first_name, last_name, email, created_at, updated_at
		FROM contacts WHERE org_id = $1 AND id = $2`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&c.ID, &c.OrgID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByAccount lista los contactos ligados a una cuenta.
func (r *ContactRepo) ListByAccount(orgID, accountID string) ([]*entity.Contact, error) {
	query := `
		SELECT id, org_id, COALESCE(account_id, ''), first_name, last_name, email, created_at, updated_at
		FROM contacts WHERE org_id = $1 AND account_id = $2 ORDER BY last_name, first_name`
	rows, err := r.q.Query(context.Background(), query, orgID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.OrgID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpsertMany inserta-o-actualiza la lista en UNA llamada bulk (pgx.Batch).
// Ejecutar dentro de TxRunner para que la llamada sea atómica.
func (r *ContactRepo) UpsertMany(contacts []*entity.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range contacts {
		batch.Queue(upsertContactSQL,
			c.ID, c.OrgID, c.AccountID, c.FirstName, c.LastName, c.Email, c.CreatedAt, c.UpdatedAt)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range contacts {
		if _, err := br.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("upsert contacts: %w", err)
		}
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(orgID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM contacts WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
