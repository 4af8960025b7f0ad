package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch lote: cohorte de animales adquirida y manejada junta.
// Cost es derivado (Unit_Cost × Total_Quantity redondeado a 2 decimales) y nunca se
// asigna independientemente; lo fija el motor de formularios antes de persistir.
type Batch struct {
	ID            int64
	UnitCost      decimal.Decimal
	TotalQuantity int64
	Cost          decimal.Decimal
	WeightBatch   decimal.Decimal // kg
	AgeBatch      int64           // días
	SpeciesID     int64
	StateID       int64
	StartingDate  time.Time
}

// Active indica si el lote sigue operativo (no fue borrado lógicamente).
func (b *Batch) Active() bool {
	return b.StateID == StateActive
}
