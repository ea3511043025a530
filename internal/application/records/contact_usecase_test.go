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
// Tests ContactUseCase: alta simple y derive-and-link (derivar la cuenta padre
// desde el apellido de cada contacto).
// ──────────────────────────────────────────────────────────────────────────────

func newContactUC() (*records.ContactUseCase, *records.AccountUseCase, *fakeTxRunner) {
	tx := newFakeTxRunner()
	accountUC := records.NewAccountUseCase(tx.accounts)
	return records.NewContactUseCase(tx.contacts, accountUC, tx), accountUC, tx
}

func TestContactCreate_SinApellido_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newContactUC()
	_, err := uc.Create(testOrgID, dto.CreateContactRequest{FirstName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "last_name es obligatorio")
}

func TestContactDeriveAndLink_CreaCuentaPorApellidoYEnlaza(t *testing.T) {
	uc, _, tx := newContactUC()

	out, err := uc.DeriveAndLink(context.Background(), testOrgID, dto.DeriveAndLinkRequest{
		Contacts: []dto.CreateContactRequest{
			{FirstName: "John", LastName: "Doe"},
			{FirstName: "Ana", LastName: "García"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 2, tx.accounts.count(),
		"apellidos distintos deben derivar dos cuentas padre")
	for _, c := range out {
		assert.NotEmpty(t, c.AccountID, "cada contacto debe quedar enlazado a su cuenta")
	}
	assert.NotEqual(t, out[0].AccountID, out[1].AccountID)

	// La cuenta derivada lleva el nombre del apellido y el marcador de nueva.
	parent, err := tx.accounts.GetByID(testOrgID, out[0].AccountID)
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, "Doe", parent.Name)
	assert.Equal(t, records.MarkerNewAccount, parent.Description)
}

// Hermanos que comparten apellido deben resolver a la MISMA cuenta padre:
// el primer contacto la crea y los siguientes la reutilizan.
func TestContactDeriveAndLink_ApellidoCompartido_MismaCuentaPadre(t *testing.T) {
	uc, _, tx := newContactUC()

	out, err := uc.DeriveAndLink(context.Background(), testOrgID, dto.DeriveAndLinkRequest{
		Contacts: []dto.CreateContactRequest{
			{FirstName: "John", LastName: "Doe"},
			{FirstName: "Jane", LastName: "Doe"},
			{FirstName: "Jim", LastName: "Doe"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, 1, tx.accounts.count(), "un solo apellido ⇒ una sola cuenta padre")
	assert.Equal(t, out[0].AccountID, out[1].AccountID)
	assert.Equal(t, out[1].AccountID, out[2].AccountID)

	// Tras el primer get-or-create la cuenta queda marcada como actualizada.
	parent, err := tx.accounts.GetByID(testOrgID, out[0].AccountID)
	require.NoError(t, err)
	assert.Equal(t, records.MarkerUpdatedAccount, parent.Description)
}

func TestContactDeriveAndLink_CuentaExistente_Reutilizada(t *testing.T) {
	uc, accountUC, tx := newContactUC()

	existing, err := accountUC.GetOrCreateByName(testOrgID, "Doe")
	require.NoError(t, err)

	out, err := uc.DeriveAndLink(context.Background(), testOrgID, dto.DeriveAndLinkRequest{
		Contacts: []dto.CreateContactRequest{{FirstName: "John", LastName: "Doe"}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, existing.ID, out[0].AccountID,
		"el contacto debe enlazarse a la cuenta ya existente, no a una nueva")
	assert.Equal(t, 1, tx.accounts.count())
}

func TestContactDeriveAndLink_ListaVacia_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newContactUC()
	_, err := uc.DeriveAndLink(context.Background(), testOrgID, dto.DeriveAndLinkRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactDeriveAndLink_ContactoSinApellido_NadaSePersiste(t *testing.T) {
	uc, _, tx := newContactUC()

	_, err := uc.DeriveAndLink(context.Background(), testOrgID, dto.DeriveAndLinkRequest{
		Contacts: []dto.CreateContactRequest{
			{FirstName: "John", LastName: "Doe"},
			{FirstName: "SinApellido"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, tx.accounts.count(), "la validación es previa: ninguna cuenta derivada")
	assert.Equal(t, 0, len(tx.contacts.contacts), "ningún contacto persistido")
}
