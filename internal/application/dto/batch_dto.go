package dto

import "github.com/shopspring/decimal"

// SaveBatchRequest entrada para crear o actualizar un lote.
// Cost no se acepta del cliente: es derivado y lo fija el motor de formularios
// (round2(Unit_Cost × Total_Quantity)); cualquier valor enviado se ignora.
type SaveBatchRequest struct {
	UnitCost      decimal.Decimal `json:"Unit_Cost"`
	TotalQuantity int64           `json:"Total_Quantity"`
	WeightBatch   decimal.Decimal `json:"Weight_Batch"`
	AgeBatch      int64           `json:"Age_Batch"`
	SpeciesID     int64           `json:"Species_idSpecies"`
	StateID       int64           `json:"States_idStates"`
}

// BatchResponse salida de un lote.
type BatchResponse struct {
	ID            int64           `json:"idBatches"`
	UnitCost      decimal.Decimal `json:"Unit_Cost"`
	TotalQuantity int64           `json:"Total_Quantity"`
	Cost          decimal.Decimal `json:"Cost"`
	WeightBatch   decimal.Decimal `json:"Weight_Batch"`
	AgeBatch      int64           `json:"Age_Batch"`
	SpeciesID     int64           `json:"Species_idSpecies"`
	StateID       int64           `json:"States_idStates"`
	StartingDate  string          `json:"Starting_Date"`
}

// BatchListResponse lista de lotes bajo el envoltorio data.
type BatchListResponse struct {
	Data []BatchResponse `json:"data"`
}

// BatchDataResponse un lote bajo el envoltorio data.
type BatchDataResponse struct {
	Data BatchResponse `json:"data"`
}
