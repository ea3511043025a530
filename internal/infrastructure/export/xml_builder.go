// Package export construye el XML de intercambio de registros CRM
// (formato usado por los importadores legacy, ver cmd/import_leads).
package export

import (
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
)

// Formato de fechas en el XML de intercambio.
const exportDateLayout = "2006-01-02"

var _ records.AccountXMLExporter = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML de una cuenta con sus registros relacionados.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// BuildAccountXML genera el []byte del documento <crmExport> de la cuenta.
func (s *XMLBuilderService) BuildAccountXML(
	account *entity.Account,
	contacts []*entity.Contact,
	opps []*entity.Opportunity,
) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("crmExport")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	acc := root.CreateElement("account")
	acc.CreateAttr("id", account.ID)
	acc.CreateElement("name").SetText(account.Name)
	acc.CreateElement("industry").SetText(account.Industry)
	acc.CreateElement("billingCity").SetText(account.BillingCity)
	acc.CreateElement("description").SetText(account.Description)

	cts := acc.CreateElement("contacts")
	for _, c := range contacts {
		ct := cts.CreateElement("contact")
		ct.CreateAttr("id", c.ID)
		ct.CreateElement("firstName").SetText(c.FirstName)
		ct.CreateElement("lastName").SetText(c.LastName)
		ct.CreateElement("email").SetText(c.Email)
	}

	ops := acc.CreateElement("opportunities")
	for _, o := range opps {
		op := ops.CreateElement("opportunity")
		op.CreateAttr("id", o.ID)
		op.CreateElement("name").SetText(o.Name)
		op.CreateElement("stageName").SetText(o.StageName)
		op.CreateElement("closeDate").SetText(o.CloseDate.Format(exportDateLayout))
		op.CreateElement("amount").SetText(o.Amount.String())
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
