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

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
// No hay DELETE físico de lotes: el borrado es UpdateState a Inactivo.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, unit_cost, total_quantity, cost, weight_batch, age_batch, species_id, state_id, starting_date`

// Create persiste un nuevo lote. Cost ya viene derivado por el motor de formularios.
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (unit_cost, total_quantity, cost, weight_batch, age_batch, species_id, state_id, starting_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		b.UnitCost, b.TotalQuantity, b.Cost, b.WeightBatch, b.AgeBatch,
		b.SpeciesID, b.StateID, b.StartingDate,
	).Scan(&b.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: especie o estado inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id int64) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila del lote; solo tiene sentido dentro de una tx.
func (r *BatchRepo) GetForUpdate(id int64) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista todos los lotes ordenados por ID.
func (r *BatchRepo) List() ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return r.scanAll(rows)
}

// ListByState lista los lotes en un estado dado (p. ej. solo activos).
func (r *BatchRepo) ListByState(stateID int64) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE state_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, stateID)
	if err != nil {
		return nil, fmt.Errorf("list batches by state: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza un lote existente, incluido el Cost rederivado.
func (r *BatchRepo) Update(b *entity.Batch) error {
	query := `
		UPDATE batches
		SET unit_cost = $2, total_quantity = $3, cost = $4, weight_batch = $5,
		    age_batch = $6, species_id = $7, state_id = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.UnitCost, b.TotalQuantity, b.Cost, b.WeightBatch,
		b.AgeBatch, b.SpeciesID, b.StateID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: especie o estado inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// UpdateState cambia solo el estado del lote (borrado lógico incluido).
func (r *BatchRepo) UpdateState(id, stateID int64) error {
	query := `UPDATE batches SET state_id = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, stateID)
	if err != nil {
		return fmt.Errorf("update batch state: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BatchRepo) scanOne(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.UnitCost, &b.TotalQuantity, &b.Cost, &b.WeightBatch,
		&b.AgeBatch, &b.SpeciesID, &b.StateID, &b.StartingDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

func (r *BatchRepo) scanAll(rows pgx.Rows) ([]*entity.Batch, error) {
	defer rows.Close()
	var out []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.UnitCost, &b.TotalQuantity, &b.Cost, &b.WeightBatch,
			&b.AgeBatch, &b.SpeciesID, &b.StateID, &b.StartingDate,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
