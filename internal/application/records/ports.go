package records

import (
	"context"

	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repositorios atados a una transacción.
// Las operaciones bulk (upsert/insert/delete de listas) corren dentro de una
// transacción para que la llamada falle o aplique como unidad.
type TxRunner interface {
	// RunRecords transacción con repos de cuentas, contactos y oportunidades.
	RunRecords(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		contactRepo repository.ContactRepository,
		oppRepo repository.OpportunityRepository,
	) error) error

	// RunRoundTrip transacción con repos de leads y casos (ciclos create→delete).
	RunRoundTrip(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		caseRepo repository.CaseRepository,
	) error) error
}

// AccountXMLExporter construye el XML de intercambio de una cuenta con sus
// registros relacionados (formato legacy-CRM).
type AccountXMLExporter interface {
	BuildAccountXML(account *entity.Account, contacts []*entity.Contact, opps []*entity.Opportunity) ([]byte, error)
}

// AccountPDFGenerator genera la hoja de registro PDF de una cuenta.
type AccountPDFGenerator interface {
	GenerateAccountPDF(ctx context.Context, account *entity.Account, contacts []*entity.Contact, opps []*entity.Opportunity) ([]byte, error)
}
