package postgres

import (
	"context"
	"fmt"

	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo agregados del tablero sobre PostgreSQL.
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository construye el adaptador de lectura del tablero.
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// Summary calcula los agregados de las tarjetas en una sola consulta.
func (r *SummaryRepo) Summary() (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM batches WHERE state_id = $1),
			(SELECT COUNT(*) FROM species),
			(SELECT COUNT(*) FROM novelties),
			COALESCE((SELECT SUM(total_production) FROM productions), 0),
			COALESCE((SELECT SUM(cost * quantity) FROM production_expenses), 0)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(context.Background(), query, entity.StateActive).Scan(
		&s.ActiveBatches, &s.SpeciesCount, &s.NoveltyCount, &s.TotalProduction, &s.TotalExpenses,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
