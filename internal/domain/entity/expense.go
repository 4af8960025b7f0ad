package entity

import "github.com/shopspring/decimal"

// Expense gasto incurrido contra un lote, ligado a un insumo del catálogo.
// El total (Cost × Quantity) es solo de presentación: se calcula al responder,
// nunca se guarda como columna.
type Expense struct {
	ID          int64
	SupplyID    int64
	BatchID     int64
	Description string
	Cost        decimal.Decimal // costo unitario
	Quantity    decimal.Decimal
}
