package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de lotes: Cost siempre derivado, borrado lógico por
// cambio de estado y compuerta como única puerta hacia el repositorio.
// ──────────────────────────────────────────────────────────────────────────────

func newBatchFixture() (*usecase.BatchUseCase, *fakeBatchRepo, *fakeSpeciesRepo) {
	species := newFakeSpeciesRepo(&entity.Species{ID: 1, Name: "Pollo"})
	batches := newFakeBatchRepo()
	uc := usecase.NewBatchUseCase(batches, newTestRefService(species, batches))
	return uc, batches, species
}

func saveBatchReq() dto.SaveBatchRequest {
	return dto.SaveBatchRequest{
		UnitCost:      decimal.RequireFromString("12.5"),
		TotalQuantity: 40,
		WeightBatch:   decimal.NewFromInt(50),
		AgeBatch:      0,
		SpeciesID:     1,
		StateID:       entity.StateActive,
	}
}

func TestBatchCreate_CalculaCostDerivado(t *testing.T) {
	uc, repo, _ := newBatchFixture()

	resp, err := uc.Create(saveBatchReq())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "500", resp.Cost.String(), "Cost = 12.5 × 40")
	assert.Equal(t, 1, repo.creates)
	assert.NotEmpty(t, resp.StartingDate, "la fecha de inicio la fija el servidor")
}

func TestBatchCreate_EstadoPorDefectoActivo(t *testing.T) {
	uc, _, _ := newBatchFixture()

	in := saveBatchReq()
	in.StateID = 0 // sin estado: debe asumir Activo
	resp, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, entity.StateActive, resp.StateID)
}

func TestBatchCreate_EspecieInexistenteNoPersiste(t *testing.T) {
	uc, repo, _ := newBatchFixture()

	in := saveBatchReq()
	in.SpeciesID = 99
	_, err := uc.Create(in)

	verr, ok := domain.AsValidation(err)
	require.True(t, ok, "la especie desconocida debe ser una violación de validación")
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, forms.CodeUnknownReference, verr.Violations[0].Code)
	assert.Equal(t, 0, repo.creates, "un candidato rechazado nunca toca el repositorio")
}

func TestBatchCreate_CantidadCeroRechazada(t *testing.T) {
	uc, repo, _ := newBatchFixture()

	in := saveBatchReq()
	in.TotalQuantity = 0
	_, err := uc.Create(in)

	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, forms.CodeOutOfRange, verr.Violations[0].Code)
	assert.Equal(t, 0, repo.creates)
}

func TestBatchUpdate_ConservaFechaYRecalculaCost(t *testing.T) {
	uc, repo, _ := newBatchFixture()

	created, err := uc.Create(saveBatchReq())
	require.NoError(t, err)

	in := saveBatchReq()
	in.UnitCost = decimal.NewFromInt(10)
	in.TotalQuantity = 100
	updated, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "1000", updated.Cost.String(), "Cost se recalcula con los nuevos insumos")
	assert.Equal(t, created.StartingDate, updated.StartingDate, "Starting_Date no cambia al editar")
	assert.Equal(t, 1, repo.updates)
}

func TestBatchUpdate_Inexistente(t *testing.T) {
	uc, _, _ := newBatchFixture()
	resp, err := uc.Update(404, saveBatchReq())
	require.NoError(t, err)
	assert.Nil(t, resp, "actualizar un lote inexistente devuelve nil, nil")
}

// TestBatchDelete_EsBorradoLogico DELETE nunca elimina la fila: cambia el
// estado a Inactivo y el lote desaparece de los conjuntos de referencia.
func TestBatchDelete_EsBorradoLogico(t *testing.T) {
	uc, repo, _ := newBatchFixture()

	created, err := uc.Create(saveBatchReq())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	require.Len(t, repo.stateChanges, 1)
	assert.Equal(t, created.ID, repo.stateChanges[0].ID)
	assert.Equal(t, entity.StateInactive, repo.stateChanges[0].StateID)

	// La fila sigue existiendo y es consultable.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el lote desactivado sigue siendo legible")
	assert.Equal(t, entity.StateInactive, got.StateID)

	// Pero ya no aparece entre los lotes activos.
	actives, err := repo.ListByState(entity.StateActive)
	require.NoError(t, err)
	assert.Empty(t, actives)
}

func TestBatchDelete_Inexistente(t *testing.T) {
	uc, _, _ := newBatchFixture()
	err := uc.Delete(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchList_IncluyeInactivos(t *testing.T) {
	uc, _, _ := newBatchFixture()

	a, err := uc.Create(saveBatchReq())
	require.NoError(t, err)
	_, err = uc.Create(saveBatchReq())
	require.NoError(t, err)
	require.NoError(t, uc.Delete(a.ID))

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list.Data, 2, "el listado general incluye lotes inactivos")
}
