package dto

import "github.com/shopspring/decimal"

// SaveExpenseRequest entrada para crear o actualizar un gasto.
type SaveExpenseRequest struct {
	SupplyID    int64           `json:"Supplies_idSupplies"`
	BatchID     int64           `json:"Batches_idBatches"`
	Description string          `json:"Description"`
	Cost        decimal.Decimal `json:"Cost"`
	Quantity    decimal.Decimal `json:"Quantity"`
}

// ExpenseResponse salida de un gasto. Total no es una columna: se recalcula
// aquí (round2(Cost × Quantity)) cada vez que se responde.
type ExpenseResponse struct {
	ID          int64           `json:"idProduction_Expenses"`
	SupplyID    int64           `json:"Supplies_idSupplies"`
	BatchID     int64           `json:"Batches_idBatches"`
	Description string          `json:"Description"`
	Cost        decimal.Decimal `json:"Cost"`
	Quantity    decimal.Decimal `json:"Quantity"`
	Total       decimal.Decimal `json:"Total"`
}

// ExpenseListResponse lista de gastos bajo el envoltorio data.
type ExpenseListResponse struct {
	Data []ExpenseResponse `json:"data"`
}

// ExpenseDataResponse un gasto bajo el envoltorio data.
type ExpenseDataResponse struct {
	Data ExpenseResponse `json:"data"`
}
