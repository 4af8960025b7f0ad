package forms

import "github.com/shopspring/decimal"

// Nombres de alambre de los campos, tal como los envía el frontend.
const (
	FieldUnitCost      = "Unit_Cost"
	FieldTotalQuantity = "Total_Quantity"
	FieldCost          = "Cost"
	FieldWeightBatch   = "Weight_Batch"
	FieldAgeBatch      = "Age_Batch"
	FieldSpeciesID     = "Species_idSpecies"
	FieldStateID       = "States_idStates"

	FieldBatchID         = "Batches_idBatches"
	FieldAvgWeight       = "Avg_Weight"
	FieldWeightCost      = "Weight_Cost"
	FieldTotalWeight     = "Total_Weight"
	FieldTotalProduction = "Total_Production"

	FieldSupplyID    = "Supplies_idSupplies"
	FieldDescription = "Description"
	FieldExpCost     = "Cost"
	FieldExpQuantity = "Quantity"
	FieldExpTotal    = "Total"

	FieldSpecieName       = "Specie_Name"
	FieldSupplieName      = "Supplie_Name"
	FieldSupplyCategoryID = "Supplies_Category_idSupplies_Category"

	FieldNoveltyQuantity   = "Quantity"
	FieldNoveltyDate       = "Date_Novelty"
	FieldNoveltyCategoryID = "Novelty_Categories_idNovelty_Categories"
)

// BatchSpec formulario de lote. Cost es derivado: nunca lo fija el usuario.
var BatchSpec = FormSpec{
	Kind: "batch",
	Fields: []FieldSpec{
		{Name: FieldSpeciesID, Kind: KindReference, Required: true, RefSet: SetSpecies},
		{Name: FieldStateID, Kind: KindReference, Required: true, RefSet: SetStates},
		{Name: FieldUnitCost, Kind: KindDecimal, Required: true, Range: RangeNonNegative},
		{Name: FieldTotalQuantity, Kind: KindInteger, Required: true, Range: RangePositive},
		{Name: FieldWeightBatch, Kind: KindDecimal, Required: true, Range: RangeNonNegative},
		{Name: FieldAgeBatch, Kind: KindInteger, Required: true, Range: RangeNonNegative},
	},
	Derived: []DerivedSpec{
		{Name: FieldCost, Monetary: true, Compute: func(v Values, _ OptionSets) (decimal.Decimal, bool) {
			unit, okU := v.Decimal(FieldUnitCost)
			qty, okQ := v.Int(FieldTotalQuantity)
			if !okU || !okQ || unit.IsNegative() || qty < 1 {
				return decimal.Decimal{}, false
			}
			return unit.Mul(decimal.NewFromInt(qty)), true
		}},
	},
}

// ProductionSpec formulario de producción/venta. Ambos derivados se recalculan
// juntos y quedan vacíos si falta el lote o el peso promedio no es válido.
var ProductionSpec = FormSpec{
	Kind: "production",
	Fields: []FieldSpec{
		{Name: FieldBatchID, Kind: KindReference, Required: true, RefSet: SetBatches},
		{Name: FieldAvgWeight, Kind: KindDecimal, Required: true, Range: RangePositive},
		{Name: FieldWeightCost, Kind: KindDecimal, Required: true, Range: RangePositive},
	},
	Derived: []DerivedSpec{
		{Name: FieldTotalWeight, Compute: func(v Values, refs OptionSets) (decimal.Decimal, bool) {
			batch, avg, ok := productionInputs(v, refs)
			if !ok {
				return decimal.Decimal{}, false
			}
			return decimal.NewFromInt(batch.Headcount).Mul(avg), true
		}},
		{Name: FieldTotalProduction, Monetary: true, Compute: func(v Values, refs OptionSets) (decimal.Decimal, bool) {
			batch, avg, ok := productionInputs(v, refs)
			if !ok {
				return decimal.Decimal{}, false
			}
			cost, okC := v.Decimal(FieldWeightCost)
			if !okC || !cost.IsPositive() {
				return decimal.Decimal{}, false
			}
			return decimal.NewFromInt(batch.Headcount).Mul(avg).Mul(cost), true
		}},
	},
}

func productionInputs(v Values, refs OptionSets) (Option, decimal.Decimal, bool) {
	id, okID := v.Int(FieldBatchID)
	avg, okAvg := v.Decimal(FieldAvgWeight)
	if !okID || !okAvg || !avg.IsPositive() {
		return Option{}, decimal.Decimal{}, false
	}
	batch, ok := refs.Resolve(SetBatches, id)
	if !ok {
		return Option{}, decimal.Decimal{}, false
	}
	return batch, avg, true
}

// ExpenseSpec formulario de gasto. Total es solo de presentación: se recalcula
// al renderizar, jamás se guarda.
var ExpenseSpec = FormSpec{
	Kind: "expense",
	Fields: []FieldSpec{
		{Name: FieldSupplyID, Kind: KindReference, Required: true, RefSet: SetSupplies},
		{Name: FieldBatchID, Kind: KindReference, Required: true, RefSet: SetBatches},
		{Name: FieldExpCost, Kind: KindDecimal, Required: true, Range: RangePositive},
		{Name: FieldExpQuantity, Kind: KindDecimal, Required: true, Range: RangePositive},
		{Name: FieldDescription, Kind: KindText, Required: true, MaxLen: 255},
	},
	Derived: []DerivedSpec{
		{Name: FieldExpTotal, Monetary: true, Compute: func(v Values, _ OptionSets) (decimal.Decimal, bool) {
			cost, okC := v.Decimal(FieldExpCost)
			qty, okQ := v.Decimal(FieldExpQuantity)
			if !okC || !okQ {
				return decimal.Decimal{}, false
			}
			return cost.Mul(qty), true
		}},
	},
}

// SpeciesSpec formulario de especie.
var SpeciesSpec = FormSpec{
	Kind: "species",
	Fields: []FieldSpec{
		{Name: FieldSpecieName, Kind: KindName, Required: true, MaxLen: 100},
	},
}

// SupplySpec formulario de insumo del catálogo.
var SupplySpec = FormSpec{
	Kind: "supply",
	Fields: []FieldSpec{
		{Name: FieldSupplyCategoryID, Kind: KindReference, Required: true, RefSet: SetSupplyCategories},
		{Name: FieldSupplieName, Kind: KindName, Required: true, MaxLen: 100},
	},
}

// NoveltySpec formulario de novedad.
var NoveltySpec = FormSpec{
	Kind: "novelty",
	Fields: []FieldSpec{
		{Name: FieldNoveltyCategoryID, Kind: KindReference, Required: true, RefSet: SetNoveltyCategories},
		{Name: FieldBatchID, Kind: KindReference, Required: true, RefSet: SetBatches},
		{Name: FieldNoveltyQuantity, Kind: KindInteger, Required: true, Range: RangePositive},
		{Name: FieldNoveltyDate, Kind: KindDate, Required: true},
		{Name: FieldDescription, Kind: KindText, Required: true, MaxLen: 255},
	},
}

// SpecFor devuelve la tabla del tipo de registro o false si no existe.
func SpecFor(kind string) (FormSpec, bool) {
	switch kind {
	case "batch":
		return BatchSpec, true
	case "production":
		return ProductionSpec, true
	case "expense":
		return ExpenseSpec, true
	case "species":
		return SpeciesSpec, true
	case "supply":
		return SupplySpec, true
	case "novelty":
		return NoveltySpec, true
	}
	return FormSpec{}, false
}
