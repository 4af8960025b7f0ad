package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse agregados para las tarjetas del tablero.
type DashboardSummaryResponse struct {
	ActiveBatches   int64           `json:"active_batches"`
	SpeciesCount    int64           `json:"species_count"`
	NoveltyCount    int64           `json:"novelty_count"`
	TotalProduction decimal.Decimal `json:"total_production"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
}

// DashboardDataResponse resumen bajo el envoltorio data.
type DashboardDataResponse struct {
	Data DashboardSummaryResponse `json:"data"`
}
