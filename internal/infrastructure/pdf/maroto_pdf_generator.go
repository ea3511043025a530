// Package pdf implementa la hoja de registro PDF de una cuenta CRM:
// datos de la cuenta, contactos asociados y pipeline de oportunidades.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ records.AccountPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa records.AccountPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAccountPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAccountPDF(
	_ context.Context,
	account *entity.Account,
	contacts []*entity.Contact,
	opps []*entity.Opportunity,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de registro - "+account.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(account))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accountDetailRow(account))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Contactos
	m.AddRows(sectionTitleRow("Contactos"))
	if len(contacts) == 0 {
		m.AddRows(emptyRow("Sin contactos asociados"))
	}
	for _, c := range contacts {
		m.AddRows(contactRow(c))
	}

	// Pipeline
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Oportunidades"))
	if len(opps) == 0 {
		m.AddRows(emptyRow("Sin oportunidades abiertas"))
	}
	total := decimal.Zero
	for _, o := range opps {
		total = total.Add(o.Amount)
		m.AddRows(opportunityRow(o))
	}
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la cuenta (izq) e industria/ciudad (der).
func headerRow(account *entity.Account) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(account.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(account.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(account.Industry, props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(account.BillingCity, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func accountDetailRow(account *entity.Account) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("ID: "+account.ID, props.Text{Size: 8, Color: colorGray, Top: 1}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
		),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New(msg, props.Text{Size: 9, Color: colorGray, Top: 1}),
		),
	)
}

func contactRow(c *entity.Contact) core.Row {
	name := c.LastName
	if c.FirstName != "" {
		name = c.FirstName + " " + c.LastName
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 9, Top: 1})),
		col.New(6).Add(text.New(c.Email, props.Text{Size: 9, Top: 1, Align: align.Right, Color: colorGray})),
	)
}

func opportunityRow(o *entity.Opportunity) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(o.Name, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(o.StageName, props.Text{Size: 9, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New(o.CloseDate.Format("02/01/2006"), props.Text{Size: 9, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("$"+o.Amount.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New("TOTAL PIPELINE", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right,
		})),
		col.New(4).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right, Color: colorPrimary,
		})),
	)
}
