package records_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests LeadUseCase: ciclo bulk create→delete desde display names.
// ──────────────────────────────────────────────────────────────────────────────

func newLeadUC() (*records.LeadUseCase, *fakeTxRunner) {
	tx := newFakeTxRunner()
	return records.NewLeadUseCase(tx.leads, tx), tx
}

func TestLeadCreate_GeneraIDYPersiste(t *testing.T) {
	uc, tx := newLeadUC()

	resp, err := uc.Create(testOrgID, dto.CreateLeadRequest{
		FirstName: "John",
		LastName:  "Doe",
		Company:   "Acme Corp",
		Email:     "john@acme.test",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID, "el create debe devolver el ID generado")
	assert.Equal(t, testOrgID, resp.OrgID)

	persisted, err := tx.leads.GetByID(testOrgID, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted, "el lead debe quedar persistido")
	assert.Equal(t, "Acme Corp", persisted.Company)
}

func TestLeadCreate_CamposObligatorios_RetornaErrInvalidInput(t *testing.T) {
	uc, tx := newLeadUC()

	// Sin apellido
	_, err := uc.Create(testOrgID, dto.CreateLeadRequest{Company: "Acme Corp"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "last_name es obligatorio")

	// Sin compañía
	_, err = uc.Create(testOrgID, dto.CreateLeadRequest{LastName: "Doe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "company es obligatoria")

	assert.Equal(t, 0, tx.leads.count(), "nada debe persistirse")
}

func TestLeadRoundTrip_InsertaYBorraTodo(t *testing.T) {
	uc, tx := newLeadUC()

	out, err := uc.BulkCreateThenDelete(context.Background(), testOrgID, dto.LeadRoundTripRequest{
		DisplayNames: []string{
			"John Doe, Acme Corp",
			"Ana García, Café S.A.",
			"Smith",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 3, out.Inserted)
	assert.Equal(t, 3, out.Deleted)
	assert.Len(t, tx.leads.inserted, 3, "los tres leads deben haberse insertado")
	assert.Equal(t, 0, tx.leads.count(), "tras el ciclo no queda ningún lead persistido")
}

// El parsing de display names se verifica a través del historial de inserts
// del fake: los leads ya fueron borrados al terminar el ciclo.
func TestLeadRoundTrip_ParseoDeDisplayNames(t *testing.T) {
	cases := []struct {
		displayName string
		first       string
		last        string
		company     string
	}{
		// Formato completo "First Last, Company"
		{"John Doe, Acme Corp", "John", "Doe", "Acme Corp"},
		// Apellido compuesto: todo después del primer token va a last_name
		{"Ana María García, Café S.A.", "Ana", "María García", "Café S.A."},
		// Sin compañía: se genera "<Last> Co."
		{"John Doe", "John", "Doe", "Doe Co."},
		// Un solo token: va a last_name (first_name es opcional en un lead)
		{"Smith", "", "Smith", "Smith Co."},
	}

	for _, tc := range cases {
		uc, tx := newLeadUC()
		_, err := uc.BulkCreateThenDelete(context.Background(), testOrgID, dto.LeadRoundTripRequest{
			DisplayNames: []string{tc.displayName},
		})
		require.NoError(t, err, "display name %q", tc.displayName)
		require.Len(t, tx.leads.inserted, 1)

		lead := tx.leads.inserted[0]
		assert.Equal(t, tc.first, lead.FirstName, "first_name de %q", tc.displayName)
		assert.Equal(t, tc.last, lead.LastName, "last_name de %q", tc.displayName)
		assert.Equal(t, tc.company, lead.Company, "company de %q", tc.displayName)
		assert.Equal(t, testOrgID, lead.OrgID)
	}
}

func TestLeadRoundTrip_ListaVacia_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newLeadUC()
	_, err := uc.BulkCreateThenDelete(context.Background(), testOrgID, dto.LeadRoundTripRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeadRoundTrip_DisplayNameVacio_RetornaErrInvalidInput(t *testing.T) {
	uc, tx := newLeadUC()
	_, err := uc.BulkCreateThenDelete(context.Background(), testOrgID, dto.LeadRoundTripRequest{
		DisplayNames: []string{"John Doe, Acme", "   "},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, tx.leads.inserted, 0, "la validación es previa al insert")
}
