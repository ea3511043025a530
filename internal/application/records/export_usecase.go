package records

import (
	"context"

	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// ExportUseCase arma la vista completa de una cuenta (cuenta + contactos +
// oportunidades) y delega la serialización a los generadores XML/PDF.
type ExportUseCase struct {
	accounts repository.AccountRepository
	contacts repository.ContactRepository
	opps     repository.OpportunityRepository
	xml      AccountXMLExporter
	pdf      AccountPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	accounts repository.AccountRepository,
	contacts repository.ContactRepository,
	opps repository.OpportunityRepository,
	xml AccountXMLExporter,
	pdf AccountPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{accounts: accounts, contacts: contacts, opps: opps, xml: xml, pdf: pdf}
}

// AccountXML genera el XML de intercambio de la cuenta. ErrNotFound si no existe.
func (uc *ExportUseCase) AccountXML(orgID, id string) ([]byte, error) {
	account, contacts, opps, err := uc.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildAccountXML(account, contacts, opps)
}

// AccountPDF genera la hoja de registro PDF de la cuenta. ErrNotFound si no existe.
func (uc *ExportUseCase) AccountPDF(ctx context.Context, orgID, id string) ([]byte, error) {
	account, contacts, opps, err := uc.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateAccountPDF(ctx, account, contacts, opps)
}

func (uc *ExportUseCase) load(orgID, id string) (*entity.Account, []*entity.Contact, []*entity.Opportunity, error) {
	account, err := uc.accounts.GetByID(orgID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if account == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	contacts, err := uc.contacts.ListByAccount(orgID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	opps, err := uc.opps.ListByAccount(orgID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return account, contacts, opps, nil
}
