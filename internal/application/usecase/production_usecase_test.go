package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de producción: los derivados se recalculan con la cabeza de ganado de
// la fila bloqueada, no con el snapshot que vio el formulario, y un registro
// persistido es inmutable.
// ──────────────────────────────────────────────────────────────────────────────

func activeBatch(id int64, headcount int64) *entity.Batch {
	return &entity.Batch{
		ID:            id,
		UnitCost:      decimal.NewFromInt(100),
		TotalQuantity: headcount,
		WeightBatch:   decimal.NewFromInt(50),
		SpeciesID:     1,
		StateID:       entity.StateActive,
	}
}

func newProductionFixture(batches *fakeBatchRepo) (*usecase.ProductionUseCase, *fakeProductionRepo) {
	species := newFakeSpeciesRepo(&entity.Species{ID: 1, Name: "Pollo"})
	prods := newFakeProductionRepo()
	runner := &fakeTxRunner{batches: batches, prods: prods}
	uc := usecase.NewProductionUseCase(runner, prods, newTestRefService(species, batches))
	return uc, prods
}

func TestProductionCreate_VectorExacto(t *testing.T) {
	batches := newFakeBatchRepo(activeBatch(7, 100))
	uc, prods := newProductionFixture(batches)

	resp, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		BatchID:    7,
		AvgWeight:  decimal.RequireFromString("2.35"),
		WeightCost: decimal.NewFromInt(4500),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "235.00", resp.TotalWeight.StringFixed(2), "Total_Weight = 100 × 2.35")
	assert.Equal(t, "1057500.00", resp.TotalProduction.StringFixed(2), "Total_Production = 100 × 2.35 × 4500")
	assert.Equal(t, 1, prods.creates)
	assert.NotEmpty(t, resp.DateProduction, "la fecha la fija el servidor")
}

// mutatingTxRunner altera el lote justo antes de entrar a la transacción,
// simulando una edición concurrente entre el snapshot del formulario y el lock.
type mutatingTxRunner struct {
	inner  *fakeTxRunner
	mutate func(*fakeBatchRepo)
}

func (r *mutatingTxRunner) Run(ctx context.Context, fn func(
	batchRepo repository.BatchRepository,
	prodRepo repository.ProductionRepository,
) error) error {
	r.mutate(r.inner.batches)
	return r.inner.Run(ctx, fn)
}

// TestProductionCreate_UsaCabezaDeGanadoBloqueada si la cantidad del lote
// cambió después del snapshot, los totales se recalculan con el valor de la
// fila bloqueada, nunca con el que vio el formulario.
func TestProductionCreate_UsaCabezaDeGanadoBloqueada(t *testing.T) {
	batches := newFakeBatchRepo(activeBatch(7, 100))
	species := newFakeSpeciesRepo(&entity.Species{ID: 1, Name: "Pollo"})
	prods := newFakeProductionRepo()
	runner := &mutatingTxRunner{
		inner: &fakeTxRunner{batches: batches, prods: prods},
		mutate: func(r *fakeBatchRepo) {
			r.rows[7].TotalQuantity = 80 // mortalidad registrada en paralelo
		},
	}
	uc := usecase.NewProductionUseCase(runner, prods, newTestRefService(species, batches))

	resp, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		BatchID:    7,
		AvgWeight:  decimal.RequireFromString("2.35"),
		WeightCost: decimal.NewFromInt(4500),
	})
	require.NoError(t, err)

	assert.Equal(t, "188.00", resp.TotalWeight.StringFixed(2), "80 × 2.35, con la cantidad bloqueada")
	assert.Equal(t, "846000.00", resp.TotalProduction.StringFixed(2), "80 × 2.35 × 4500")
}

// TestProductionCreate_LoteDesactivadoEnTransaccion el lote estaba activo en el
// snapshot pero otro proceso lo desactivó antes del lock: la venta se rechaza.
func TestProductionCreate_LoteDesactivadoEnTransaccion(t *testing.T) {
	batches := newFakeBatchRepo(activeBatch(7, 100))
	species := newFakeSpeciesRepo(&entity.Species{ID: 1, Name: "Pollo"})
	prods := newFakeProductionRepo()
	runner := &mutatingTxRunner{
		inner: &fakeTxRunner{batches: batches, prods: prods},
		mutate: func(r *fakeBatchRepo) {
			r.rows[7].StateID = entity.StateInactive
		},
	}
	uc := usecase.NewProductionUseCase(runner, prods, newTestRefService(species, batches))

	_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		BatchID:    7,
		AvgWeight:  decimal.NewFromInt(2),
		WeightCost: decimal.NewFromInt(4500),
	})
	assert.ErrorIs(t, err, domain.ErrBatchInactive)
	assert.Equal(t, 0, prods.creates)
}

// TestProductionCreate_LoteInactivoNoEsReferencia un lote ya inactivo ni
// siquiera aparece en el conjunto de referencia: violación de la compuerta.
func TestProductionCreate_LoteInactivoNoEsReferencia(t *testing.T) {
	inactive := activeBatch(7, 100)
	inactive.StateID = entity.StateInactive
	batches := newFakeBatchRepo(inactive)
	uc, prods := newProductionFixture(batches)

	_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		BatchID:    7,
		AvgWeight:  decimal.NewFromInt(2),
		WeightCost: decimal.NewFromInt(4500),
	})

	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, forms.CodeUnknownReference, verr.Violations[0].Code)
	assert.Equal(t, 0, prods.creates)
}

func TestProductionCreate_PesoNoPositivoRechazado(t *testing.T) {
	batches := newFakeBatchRepo(activeBatch(7, 100))
	uc, prods := newProductionFixture(batches)

	_, err := uc.Create(context.Background(), dto.CreateProductionRequest{
		BatchID:    7,
		AvgWeight:  decimal.Zero,
		WeightCost: decimal.NewFromInt(4500),
	})

	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, forms.FieldAvgWeight, verr.Violations[0].Field)
	assert.Equal(t, 0, prods.creates)
}

func TestProductionGetByID_Inexistente(t *testing.T) {
	batches := newFakeBatchRepo(activeBatch(7, 100))
	uc, _ := newProductionFixture(batches)

	resp, err := uc.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, resp)
}
