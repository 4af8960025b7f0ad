package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production registro de producción/venta contra un lote existente.
// TotalWeight y TotalProduction son derivados y se recalculan siempre juntos:
//
//	TotalWeight     = headcount(lote) × AvgWeight
//	TotalProduction = round2(TotalWeight × WeightCost)
//
// Un registro de producción es inmutable una vez persistido (solo creación).
type Production struct {
	ID              int64
	BatchID         int64
	Date            time.Time
	AvgWeight       decimal.Decimal // kg por cabeza
	WeightCost      decimal.Decimal // precio por kg
	TotalWeight     decimal.Decimal
	TotalProduction decimal.Decimal
}
