package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// Ensure TxRunner implements records.TxRunner.
var _ records.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRecords inicia una transacción, ejecuta fn con repos de cuentas,
// contactos y oportunidades atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunRecords(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	contactRepo repository.ContactRepository,
	oppRepo repository.OpportunityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewAccountRepository(tx)
	contactRepo := NewContactRepository(tx)
	oppRepo := NewOpportunityRepository(tx)

	if err := fn(accountRepo, contactRepo, oppRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRoundTrip inicia una transacción con repos de leads y casos
// (ciclos bulk create→delete).
func (r *TxRunner) RunRoundTrip(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	caseRepo repository.CaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leadRepo := NewLeadRepository(tx)
	caseRepo := NewCaseRepository(tx)

	if err := fn(leadRepo, caseRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
