package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre
// PostgreSQL (usable con pool o tx). Solo INSERT y SELECT: los registros de
// producción son inmutables.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de persistencia para producciones.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un registro de producción con sus derivados ya calculados.
func (r *ProductionRepo) Create(p *entity.Production) error {
	query := `
		INSERT INTO productions (batch_id, date_production, avg_weight, weight_cost, total_weight, total_production)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.BatchID, p.Date, p.AvgWeight, p.WeightCost, p.TotalWeight, p.TotalProduction,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: lote inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de producción por ID.
func (r *ProductionRepo) GetByID(id int64) (*entity.Production, error) {
	query := `
		SELECT id, batch_id, date_production, avg_weight, weight_cost, total_weight, total_production
		FROM productions WHERE id = $1`
	var p entity.Production
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.BatchID, &p.Date, &p.AvgWeight, &p.WeightCost, &p.TotalWeight, &p.TotalProduction,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// List lista las producciones más recientes primero.
func (r *ProductionRepo) List() ([]*entity.Production, error) {
	query := `
		SELECT id, batch_id, date_production, avg_weight, weight_cost, total_weight, total_production
		FROM productions ORDER BY date_production DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(
			&p.ID, &p.BatchID, &p.Date, &p.AvgWeight, &p.WeightCost, &p.TotalWeight, &p.TotalProduction,
		); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
