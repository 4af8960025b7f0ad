package repository

import "github.com/shopspring/decimal"

// DashboardSummary agregados para las tarjetas del tablero.
type DashboardSummary struct {
	ActiveBatches   int64
	SpeciesCount    int64
	NoveltyCount    int64
	TotalProduction decimal.Decimal
	TotalExpenses   decimal.Decimal
}

// SummaryRepository puerto de lectura de agregados del tablero.
type SummaryRepository interface {
	Summary() (*DashboardSummary, error)
}
