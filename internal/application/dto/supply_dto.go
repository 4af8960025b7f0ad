package dto

// SaveSupplyRequest entrada para crear o actualizar un insumo.
type SaveSupplyRequest struct {
	SupplieName string `json:"Supplie_Name"`
	CategoryID  int64  `json:"Supplies_Category_idSupplies_Category"`
}

// SupplyResponse salida de un insumo.
type SupplyResponse struct {
	ID          int64  `json:"idSupplies"`
	SupplieName string `json:"Supplie_Name"`
	CategoryID  int64  `json:"Supplies_Category_idSupplies_Category"`
}

// SupplyListResponse lista de insumos bajo el envoltorio data.
type SupplyListResponse struct {
	Data []SupplyResponse `json:"data"`
}

// SupplyDataResponse un insumo bajo el envoltorio data.
type SupplyDataResponse struct {
	Data SupplyResponse `json:"data"`
}

// SupplyCategoryResponse salida de una categoría de insumos.
type SupplyCategoryResponse struct {
	ID           int64  `json:"idSupplies_Category"`
	CategoryName string `json:"Category_Name"`
}

// SupplyCategoryListResponse lista de categorías bajo el envoltorio data.
type SupplyCategoryListResponse struct {
	Data []SupplyCategoryResponse `json:"data"`
}
