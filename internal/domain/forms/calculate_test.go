package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del Calculator: los derivados se recalculan siempre desde los campos de
// entrada y quedan vacíos cuando algún insumo falta o es inválido.
//
// Vectores de referencia calculados a mano:
//
//	Lote:       Cost             = 12.5  × 40          = 500.00
//	Producción: Total_Weight     = 100   × 2.35        = 235.00
//	            Total_Production = 100   × 2.35 × 4500 = 1057500.00
//	Gasto:      Total            = 15000 × 3           = 45000.00
// ──────────────────────────────────────────────────────────────────────────────

func testBatchRefs() forms.OptionSets {
	return forms.OptionSets{
		forms.SetSpecies: {{ID: 1, Name: "Pollo"}},
		forms.SetStates:  {{ID: 1, Name: "Activo"}, {ID: 2, Name: "Inactivo"}},
	}
}

func testProductionRefs() forms.OptionSets {
	return forms.OptionSets{
		forms.SetBatches: {{ID: 7, Name: "Lote 7", Headcount: 100}},
	}
}

func TestCalculate_CostoLote_VectorExacto(t *testing.T) {
	raw := map[string]string{
		forms.FieldSpeciesID:     "1",
		forms.FieldStateID:       "1",
		forms.FieldUnitCost:      "12.5",
		forms.FieldTotalQuantity: "40",
		forms.FieldWeightBatch:   "50",
		forms.FieldAgeBatch:      "0",
	}

	v, viols := forms.Process(forms.BatchSpec, raw, testBatchRefs())
	require.Empty(t, viols, "el lote de referencia debe pasar la compuerta sin violaciones")

	cost, ok := v.Derived(forms.FieldCost)
	require.True(t, ok, "Cost debe calcularse cuando Unit_Cost y Total_Quantity son válidos")
	assert.Equal(t, "500.00", forms.DisplayDecimal(cost),
		"Cost = Unit_Cost × Total_Quantity = 12.5 × 40 = 500.00")
}

func TestCalculate_Produccion_VectorExacto(t *testing.T) {
	raw := map[string]string{
		forms.FieldBatchID:    "7",
		forms.FieldAvgWeight:  "2.35",
		forms.FieldWeightCost: "4500",
	}

	v, viols := forms.Process(forms.ProductionSpec, raw, testProductionRefs())
	require.Empty(t, viols)

	tw, ok := v.Derived(forms.FieldTotalWeight)
	require.True(t, ok)
	assert.Equal(t, "235.00", forms.DisplayDecimal(tw),
		"Total_Weight = cabezas × peso promedio = 100 × 2.35 = 235.00")

	tp, ok := v.Derived(forms.FieldTotalProduction)
	require.True(t, ok)
	assert.Equal(t, "1057500.00", forms.DisplayDecimal(tp),
		"Total_Production = 100 × 2.35 × 4500 = 1057500.00")
}

func TestCalculate_TotalGasto_VectorExacto(t *testing.T) {
	raw := map[string]string{
		forms.FieldSupplyID:    "3",
		forms.FieldBatchID:     "7",
		forms.FieldExpCost:     "15000",
		forms.FieldExpQuantity: "3",
		forms.FieldDescription: "Bultos de alimento",
	}
	refs := forms.OptionSets{
		forms.SetSupplies: {{ID: 3, Name: "Concentrado"}},
		forms.SetBatches:  {{ID: 7, Name: "Lote 7", Headcount: 100}},
	}

	v, viols := forms.Process(forms.ExpenseSpec, raw, refs)
	require.Empty(t, viols)

	total, ok := v.Derived(forms.FieldExpTotal)
	require.True(t, ok)
	assert.Equal(t, "45000.00", forms.DisplayDecimal(total),
		"Total = Cost × Quantity = 15000 × 3 = 45000.00")
}

// TestCalculate_Idempotente recalcular sobre un candidato sin cambios no mueve
// ningún derivado.
func TestCalculate_Idempotente(t *testing.T) {
	refs := testProductionRefs()
	v := forms.NewValues().
		SetInt(forms.FieldBatchID, 7).
		SetDecimal(forms.FieldAvgWeight, decimal.RequireFromString("2.35")).
		SetDecimal(forms.FieldWeightCost, decimal.NewFromInt(4500))

	v = forms.Calculate(forms.ProductionSpec, v, refs)
	first, ok := v.Derived(forms.FieldTotalProduction)
	require.True(t, ok)

	v = forms.Calculate(forms.ProductionSpec, v, refs)
	second, ok := v.Derived(forms.FieldTotalProduction)
	require.True(t, ok)

	assert.True(t, first.Equal(second), "recalcular sin cambios debe producir el mismo valor")
}

// TestCalculate_InsumoInvalidoLimpiaDerivado un derivado nunca conserva un
// valor viejo: si su insumo deja de ser válido, el derivado queda vacío.
func TestCalculate_InsumoInvalidoLimpiaDerivado(t *testing.T) {
	refs := testBatchRefs()

	raw := map[string]string{
		forms.FieldUnitCost:      "12.5",
		forms.FieldTotalQuantity: "40",
	}
	v, _ := forms.Normalize(forms.BatchSpec, raw)
	v = forms.Calculate(forms.BatchSpec, v, refs)
	_, ok := v.Derived(forms.FieldCost)
	require.True(t, ok, "con insumos válidos el derivado existe")

	// La cantidad pasa a ser inválida: el derivado debe desaparecer.
	raw2 := map[string]string{
		forms.FieldUnitCost:      "12.5",
		forms.FieldTotalQuantity: "abc",
	}
	v2, _ := forms.Normalize(forms.BatchSpec, raw2)
	v2 = forms.Calculate(forms.BatchSpec, v2, refs)
	_, ok = v2.Derived(forms.FieldCost)
	assert.False(t, ok, "con un insumo inválido el derivado queda explícitamente vacío")
}

// TestCalculate_LoteDesconocidoLimpiaDerivados los derivados de producción
// dependen del conteo del lote: sin lote resuelto no hay cálculo.
func TestCalculate_LoteDesconocidoLimpiaDerivados(t *testing.T) {
	v := forms.NewValues().
		SetInt(forms.FieldBatchID, 999). // no existe en el conjunto
		SetDecimal(forms.FieldAvgWeight, decimal.RequireFromString("2.35")).
		SetDecimal(forms.FieldWeightCost, decimal.NewFromInt(4500))

	v = forms.Calculate(forms.ProductionSpec, v, testProductionRefs())

	_, okW := v.Derived(forms.FieldTotalWeight)
	_, okP := v.Derived(forms.FieldTotalProduction)
	assert.False(t, okW, "Total_Weight no debe calcularse con lote desconocido")
	assert.False(t, okP, "Total_Production no debe calcularse con lote desconocido")
}

// TestCalculate_RedondeoMonetario mitad-lejos-de-cero a 2 decimales.
func TestCalculate_RedondeoMonetario(t *testing.T) {
	refs := testBatchRefs()
	raw := map[string]string{
		forms.FieldUnitCost:      "0.125",
		forms.FieldTotalQuantity: "3", // 0.375 → 0.38
	}
	v, _ := forms.Normalize(forms.BatchSpec, raw)
	v = forms.Calculate(forms.BatchSpec, v, refs)

	cost, ok := v.Derived(forms.FieldCost)
	require.True(t, ok)
	assert.Equal(t, "0.38", cost.String(), "0.375 debe redondear a 0.38 (mitad lejos de cero)")
}

// TestFormatDecimal_RoundTrip parse(format(x)) == x para valores con distinta
// cantidad de decimales.
func TestFormatDecimal_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "12.5", "0.001", "-3.75", "1057500", "99999999.99"} {
		d := decimal.RequireFromString(s)
		back, err := decimal.NewFromString(forms.FormatDecimal(d))
		require.NoError(t, err, "FormatDecimal(%s) debe volver a parsear", s)
		assert.True(t, d.Equal(back), "round-trip de %s debe ser exacto", s)
	}
}
