package dto

// Los nombres de campo JSON replican el contrato que ya consume el frontend
// (Specie_Name, idSpecies, ...); el envoltorio {"data": ...} también.

// SaveSpeciesRequest entrada para crear o actualizar una especie.
type SaveSpeciesRequest struct {
	SpecieName string `json:"Specie_Name"`
}

// SpeciesResponse salida de una especie.
type SpeciesResponse struct {
	ID         int64  `json:"idSpecies"`
	SpecieName string `json:"Specie_Name"`
}

// SpeciesListResponse lista de especies bajo el envoltorio data.
type SpeciesListResponse struct {
	Data []SpeciesResponse `json:"data"`
}

// SpeciesDataResponse una especie bajo el envoltorio data.
type SpeciesDataResponse struct {
	Data SpeciesResponse `json:"data"`
}

// StateResponse salida de un estado.
type StateResponse struct {
	ID        int64  `json:"idStates"`
	StateName string `json:"State_Name"`
}

// StateListResponse lista de estados bajo el envoltorio data.
type StateListResponse struct {
	Data []StateResponse `json:"data"`
}
