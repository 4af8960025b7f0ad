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

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación del puerto SupplyRepository sobre PostgreSQL.
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador de persistencia para insumos.
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

// Create persiste un nuevo insumo del catálogo.
func (r *SupplyRepo) Create(s *entity.Supply) error {
	query := `INSERT INTO supplies (name, category_id) VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, s.Name, s.CategoryID).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *SupplyRepo) GetByID(id int64) (*entity.Supply, error) {
	query := `SELECT id, name, category_id FROM supplies WHERE id = $1`
	var s entity.Supply
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return &s, nil
}

// List lista los insumos ordenados por ID.
func (r *SupplyRepo) List() ([]*entity.Supply, error) {
	query := `SELECT id, name, category_id FROM supplies ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supply
	for rows.Next() {
		var s entity.Supply
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID); err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update actualiza un insumo existente.
func (r *SupplyRepo) Update(s *entity.Supply) error {
	query := `UPDATE supplies SET name = $2, category_id = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.CategoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("update supply: %w", err)
	}
	return nil
}

// Delete elimina un insumo. Falla con ErrReferenceData si hay gastos que lo usan.
func (r *SupplyRepo) Delete(id int64) error {
	query := `DELETE FROM supplies WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el insumo tiene gastos asociados", domain.ErrReferenceData)
		}
		return fmt.Errorf("delete supply: %w", err)
	}
	return nil
}

var _ repository.SupplyCategoryRepository = (*SupplyCategoryRepo)(nil)

// SupplyCategoryRepo lectura del catálogo de categorías de insumos.
type SupplyCategoryRepo struct {
	q Querier
}

// NewSupplyCategoryRepository construye el adaptador de lectura de categorías.
func NewSupplyCategoryRepository(q Querier) *SupplyCategoryRepo {
	return &SupplyCategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID.
func (r *SupplyCategoryRepo) GetByID(id int64) (*entity.SupplyCategory, error) {
	query := `SELECT id, name FROM supply_categories WHERE id = $1`
	var c entity.SupplyCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply category: %w", err)
	}
	return &c, nil
}

// List lista las categorías ordenadas por ID.
func (r *SupplyCategoryRepo) List() ([]*entity.SupplyCategory, error) {
	query := `SELECT id, name FROM supply_categories ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list supply categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.SupplyCategory
	for rows.Next() {
		var c entity.SupplyCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan supply category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
