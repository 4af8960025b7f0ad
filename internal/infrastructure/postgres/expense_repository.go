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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
// No guarda el total: es de presentación y se recalcula al responder.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO production_expenses (supply_id, batch_id, description, cost, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.SupplyID, e.BatchID, e.Description, e.Cost, e.Quantity,
	).Scan(&e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: insumo o lote inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	query := `SELECT id, supply_id, batch_id, description, cost, quantity FROM production_expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.SupplyID, &e.BatchID, &e.Description, &e.Cost, &e.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List lista los gastos ordenados por ID descendente.
func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	query := `SELECT id, supply_id, batch_id, description, cost, quantity FROM production_expenses ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.SupplyID, &e.BatchID, &e.Description, &e.Cost, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Update actualiza un gasto existente.
func (r *ExpenseRepo) Update(e *entity.Expense) error {
	query := `
		UPDATE production_expenses
		SET supply_id = $2, batch_id = $3, description = $4, cost = $5, quantity = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.SupplyID, e.BatchID, e.Description, e.Cost, e.Quantity,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: insumo o lote inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}
