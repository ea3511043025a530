package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests OpportunityUseCase: alta simple y bulk upsert con defaults.
// ──────────────────────────────────────────────────────────────────────────────

func newOpportunityUC() (*records.OpportunityUseCase, *fakeTxRunner) {
	tx := newFakeTxRunner()
	return records.NewOpportunityUseCase(tx.opps, tx), tx
}

func TestOpportunityCreate_ParseaFechaYPersiste(t *testing.T) {
	uc, tx := newOpportunityUC()

	resp, err := uc.Create(testOrgID, dto.CreateOpportunityRequest{
		Name:      "Gran venta",
		StageName: entity.StageProspecting,
		CloseDate: "2026-12-31",
		Amount:    decimal.NewFromInt(120000),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "2026-12-31", resp.CloseDate)
	assert.True(t, decimal.NewFromInt(120000).Equal(resp.Amount))

	persisted, err := tx.opps.GetByID(testOrgID, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted, "la oportunidad debe quedar persistida")
}

func TestOpportunityCreate_FechaInvalida_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newOpportunityUC()
	_, err := uc.Create(testOrgID, dto.CreateOpportunityRequest{
		Name:      "Venta",
		StageName: entity.StageProspecting,
		CloseDate: "31/12/2026", // formato incorrecto
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El bulk upsert sobreescribe SIEMPRE etapa, fecha de cierre y monto con los
// defaults del pipeline, traiga lo que traiga cada item.
func TestOpportunityBulkUpsert_AplicaDefaultsATodosLosItems(t *testing.T) {
	uc, tx := newOpportunityUC()

	items := []dto.OpportunityUpsertItem{
		{Name: "Oportunidad A"},
		{Name: "Oportunidad B"},
		{Name: "Oportunidad C"},
	}
	out, err := uc.BulkUpsertWithDefaults(context.Background(), testOrgID, items)
	require.NoError(t, err)
	require.Len(t, out, 3)

	expectedClose := time.Now().AddDate(0, 3, 0).Format("2006-01-02")
	for _, o := range out {
		assert.Equal(t, entity.StageQualification, o.StageName,
			"todos los items reciben la etapa default")
		assert.Equal(t, expectedClose, o.CloseDate,
			"la fecha de cierre default es hoy + 3 meses")
		assert.True(t, decimal.NewFromInt(50000).Equal(o.Amount),
			"el monto default es 50000")
		assert.NotEmpty(t, o.ID, "los items sin ID reciben uno generado")
	}
	assert.Equal(t, 3, len(tx.opps.opps), "los tres items deben quedar persistidos")
}

func TestOpportunityBulkUpsert_ItemConID_ActualizaElExistente(t *testing.T) {
	uc, tx := newOpportunityUC()

	// Sembrar una oportunidad existente con etapa y monto distintos
	created, err := uc.Create(testOrgID, dto.CreateOpportunityRequest{
		Name:      "Venta original",
		StageName: entity.StageProposal,
		CloseDate: "2026-01-15",
		Amount:    decimal.NewFromInt(999),
	})
	require.NoError(t, err)

	out, err := uc.BulkUpsertWithDefaults(context.Background(), testOrgID, []dto.OpportunityUpsertItem{
		{ID: created.ID, Name: "Venta renombrada"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, created.ID, out[0].ID, "item con ID debe actualizar, no insertar")
	assert.Equal(t, 1, len(tx.opps.opps), "no debe quedar un registro duplicado")

	persisted, err := tx.opps.GetByID(testOrgID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Venta renombrada", persisted.Name)
	assert.Equal(t, entity.StageQualification, persisted.StageName,
		"el upsert sobreescribe la etapa con el default")
	assert.True(t, decimal.NewFromInt(50000).Equal(persisted.Amount),
		"el upsert sobreescribe el monto con el default")
}

func TestOpportunityBulkUpsert_ListaVacia_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newOpportunityUC()
	_, err := uc.BulkUpsertWithDefaults(context.Background(), testOrgID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpportunityBulkUpsert_ItemSinNombre_RetornaErrInvalidInput(t *testing.T) {
	uc, tx := newOpportunityUC()
	_, err := uc.BulkUpsertWithDefaults(context.Background(), testOrgID, []dto.OpportunityUpsertItem{
		{Name: "Válida"},
		{Name: ""},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, len(tx.opps.opps), "la validación ocurre antes de persistir")
}
