package export_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/infrastructure/export"
)

func buildTestAccount() (*entity.Account, []*entity.Contact, []*entity.Opportunity) {
	now := time.Now()
	account := &entity.Account{
		ID:          "acc-1",
		OrgID:       "org-1",
		Name:        "Acme Corp",
		Industry:    "Manufacturing",
		BillingCity: "Bogotá",
		Description: "Cliente clave",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	contacts := []*entity.Contact{
		{ID: "ct-1", OrgID: "org-1", AccountID: "acc-1", FirstName: "John", LastName: "Doe", Email: "john@acme.test"},
		{ID: "ct-2", OrgID: "org-1", AccountID: "acc-1", FirstName: "Ana", LastName: "García"},
	}
	opps := []*entity.Opportunity{
		{
			ID: "op-1", OrgID: "org-1", AccountID: "acc-1",
			Name:      "Gran venta",
			StageName: entity.StageQualification,
			CloseDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(50000),
		},
	}
	return account, contacts, opps
}

// El documento generado debe poder re-parsearse y conservar la estructura
// <crmExport><account>… con los registros relacionados anidados.
func TestBuildAccountXML_EstructuraDelDocumento(t *testing.T) {
	svc := export.NewXMLBuilderService()
	account, contacts, opps := buildTestAccount()

	raw, err := svc.BuildAccountXML(account, contacts, opps)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw), "el XML generado debe ser parseable")

	root := doc.SelectElement("crmExport")
	require.NotNil(t, root, "el elemento raíz debe ser crmExport")
	assert.Equal(t, "1.0", root.SelectAttrValue("version", ""))
	assert.NotEmpty(t, root.SelectAttrValue("generatedAt", ""))

	acc := root.SelectElement("account")
	require.NotNil(t, acc)
	assert.Equal(t, "acc-1", acc.SelectAttrValue("id", ""))
	assert.Equal(t, "Acme Corp", acc.SelectElement("name").Text())
	assert.Equal(t, "Bogotá", acc.SelectElement("billingCity").Text())

	cts := acc.SelectElement("contacts")
	require.NotNil(t, cts)
	assert.Len(t, cts.SelectElements("contact"), 2)
	first := cts.SelectElements("contact")[0]
	assert.Equal(t, "ct-1", first.SelectAttrValue("id", ""))
	assert.Equal(t, "Doe", first.SelectElement("lastName").Text())

	ops := acc.SelectElement("opportunities")
	require.NotNil(t, ops)
	require.Len(t, ops.SelectElements("opportunity"), 1)
	op := ops.SelectElements("opportunity")[0]
	assert.Equal(t, entity.StageQualification, op.SelectElement("stageName").Text())
	assert.Equal(t, "2026-12-31", op.SelectElement("closeDate").Text())
	assert.Equal(t, "50000", op.SelectElement("amount").Text())
}

// Una cuenta sin registros relacionados genera contenedores vacíos, no
// elementos ausentes: los importadores legacy esperan ambos nodos.
func TestBuildAccountXML_SinRelacionados_ContenedoresVacios(t *testing.T) {
	svc := export.NewXMLBuilderService()
	account, _, _ := buildTestAccount()

	raw, err := svc.BuildAccountXML(account, nil, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))

	acc := doc.SelectElement("crmExport").SelectElement("account")
	require.NotNil(t, acc)
	require.NotNil(t, acc.SelectElement("contacts"))
	require.NotNil(t, acc.SelectElement("opportunities"))
	assert.Empty(t, acc.SelectElement("contacts").SelectElements("contact"))
	assert.Empty(t, acc.SelectElement("opportunities").SelectElements("opportunity"))
}
