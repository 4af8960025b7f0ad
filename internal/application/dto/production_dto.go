package dto

import "github.com/shopspring/decimal"

// CreateProductionRequest entrada para registrar una producción/venta.
// Total_Weight y Total_Production no se aceptan del cliente: se derivan del
// lote referenciado y del peso promedio.
type CreateProductionRequest struct {
	BatchID    int64           `json:"Batches_idBatches"`
	AvgWeight  decimal.Decimal `json:"Avg_Weight"`
	WeightCost decimal.Decimal `json:"Weight_Cost"`
}

// ProductionResponse salida de un registro de producción. Los decimales se
// serializan como strings (el backend original entrega estos campos así y el
// frontend ya los parsea).
type ProductionResponse struct {
	ID              int64           `json:"idProduction"`
	BatchID         int64           `json:"Batches_idBatches"`
	DateProduction  string          `json:"Date_Production"`
	AvgWeight       decimal.Decimal `json:"Avg_Weight"`
	TotalWeight     decimal.Decimal `json:"Total_Weight"`
	WeightCost      decimal.Decimal `json:"Weight_Cost"`
	TotalProduction decimal.Decimal `json:"Total_Production"`
}

// ProductionListResponse lista de producciones bajo el envoltorio data.
type ProductionListResponse struct {
	Data []ProductionResponse `json:"data"`
}

// ProductionDataResponse una producción bajo el envoltorio data.
type ProductionDataResponse struct {
	Data ProductionResponse `json:"data"`
}
