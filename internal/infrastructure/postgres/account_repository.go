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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Insert persiste una nueva cuenta.
func (r *AccountRepo) Insert(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, org_id, name, name_key, industry, billing_city, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.OrgID, account.Name, account.NameKey, account.Industry,
		account.BillingCity, account.Description, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. Devuelve nil sin error si no hay fila.
func (r *AccountRepo) GetByID(orgID, id string) (*entity.Account, error) {
	query := `
		SELECT id, org_id, name, name_key, industry, billing_city, description, created_at, updated_at
		FROM accounts WHERE org_id = $1 AND id = $2`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&a.ID, &a.OrgID, &a.Name, &a.NameKey, &a.Industry, &a.BillingCity, &a.Description,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// GetByNameKey busca por la clave natural normalizada. La tabla no tiene
// índice único sobre name_key, así que si hay duplicados (carrera del
// get-or-create) se devuelve el más antiguo para un resultado estable.
func (r *AccountRepo) GetByNameKey(orgID, nameKey string) (*entity.Account, error) {
	query := `
		SELECT id, org_id, name, name_key, industry, billing_city, description, created_at, updated_at
		FROM accounts WHERE org_id = $1 AND name_key = $2
		ORDER BY created_at LIMIT 1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, orgID, nameKey).Scan(
		&a.ID, &a.OrgID, &a.Name, &a.NameKey, &a.Industry, &a.BillingCity, &a.Description,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by name_key: %w", err)
	}
	return &a, nil
}

// ListByOrg lista cuentas de la organización con paginación.
func (r *AccountRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT id, org_id, name, name_key, industry, billing_city, description, created_at, updated_at
		FROM accounts WHERE org_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Name, &a.NameKey, &a.Industry, &a.BillingCity,
			&a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una cuenta por ID.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $3, name_key = $4, industry = $5, billing_city = $6,
			description = $7, updated_at = $8
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		account.OrgID, account.ID, account.Name, account.NameKey, account.Industry,
		account.BillingCity, account.Description, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza por ID (insert-or-update del verbo upsert).
func (r *AccountRepo) Upsert(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, org_id, name, name_key, industry, billing_city, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, name_key = EXCLUDED.name_key, industry = EXCLUDED.industry,
			billing_city = EXCLUDED.billing_city, description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.OrgID, account.Name, account.NameKey, account.Industry,
		account.BillingCity, account.Description, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(orgID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM accounts WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
