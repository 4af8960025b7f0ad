package dto

// SaveNoveltyRequest entrada para crear o actualizar una novedad.
type SaveNoveltyRequest struct {
	Quantity    int64  `json:"Quantity"`
	Description string `json:"Description"`
	DateNovelty string `json:"Date_Novelty"` // YYYY-MM-DD
	BatchID     int64  `json:"Batches_idBatches"`
	CategoryID  int64  `json:"Novelty_Categories_idNovelty_Categories"`
}

// NoveltyResponse salida de una novedad.
type NoveltyResponse struct {
	ID          int64  `json:"idNovelties"`
	Quantity    int64  `json:"Quantity"`
	Description string `json:"Description"`
	DateNovelty string `json:"Date_Novelty"`
	BatchID     int64  `json:"Batches_idBatches"`
	CategoryID  int64  `json:"Novelty_Categories_idNovelty_Categories"`
}

// NoveltyListResponse lista de novedades bajo el envoltorio data.
type NoveltyListResponse struct {
	Data []NoveltyResponse `json:"data"`
}

// NoveltyDataResponse una novedad bajo el envoltorio data.
type NoveltyDataResponse struct {
	Data NoveltyResponse `json:"data"`
}

// NoveltyCategoryResponse salida de una categoría de novedades.
type NoveltyCategoryResponse struct {
	ID           int64  `json:"idNovelty_Categories"`
	CategoryName string `json:"Category_Name"`
}

// NoveltyCategoryListResponse lista de categorías bajo el envoltorio data.
type NoveltyCategoryListResponse struct {
	Data []NoveltyCategoryResponse `json:"data"`
}
