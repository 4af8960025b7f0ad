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

var _ repository.NoveltyRepository = (*NoveltyRepo)(nil)

// NoveltyRepo implementación del puerto NoveltyRepository sobre PostgreSQL.
type NoveltyRepo struct {
	q Querier
}

// NewNoveltyRepository construye el adaptador de persistencia para novedades.
func NewNoveltyRepository(q Querier) *NoveltyRepo {
	return &NoveltyRepo{q: q}
}

// Create persiste una nueva novedad.
func (r *NoveltyRepo) Create(n *entity.Novelty) error {
	query := `
		INSERT INTO novelties (quantity, description, date_novelty, batch_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		n.Quantity, n.Description, n.Date, n.BatchID, n.CategoryID,
	).Scan(&n.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: lote o categoría inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("insert novelty: %w", err)
	}
	return nil
}

// GetByID obtiene una novedad por ID.
func (r *NoveltyRepo) GetByID(id int64) (*entity.Novelty, error) {
	query := `SELECT id, quantity, description, date_novelty, batch_id, category_id FROM novelties WHERE id = $1`
	var n entity.Novelty
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Quantity, &n.Description, &n.Date, &n.BatchID, &n.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get novelty: %w", err)
	}
	return &n, nil
}

// List lista las novedades más recientes primero.
func (r *NoveltyRepo) List() ([]*entity.Novelty, error) {
	query := `SELECT id, quantity, description, date_novelty, batch_id, category_id FROM novelties ORDER BY date_novelty DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list novelties: %w", err)
	}
	defer rows.Close()

	var out []*entity.Novelty
	for rows.Next() {
		var n entity.Novelty
		if err := rows.Scan(&n.ID, &n.Quantity, &n.Description, &n.Date, &n.BatchID, &n.CategoryID); err != nil {
			return nil, fmt.Errorf("scan novelty: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// Update actualiza una novedad existente.
func (r *NoveltyRepo) Update(n *entity.Novelty) error {
	query := `
		UPDATE novelties
		SET quantity = $2, description = $3, date_novelty = $4, batch_id = $5, category_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Quantity, n.Description, n.Date, n.BatchID, n.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: lote o categoría inexistente", domain.ErrReferenceData)
		}
		return fmt.Errorf("update novelty: %w", err)
	}
	return nil
}

// Delete elimina una novedad.
func (r *NoveltyRepo) Delete(id int64) error {
	query := `DELETE FROM novelties WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete novelty: %w", err)
	}
	return nil
}

var _ repository.NoveltyCategoryRepository = (*NoveltyCategoryRepo)(nil)

// NoveltyCategoryRepo lectura del catálogo de categorías de novedades.
type NoveltyCategoryRepo struct {
	q Querier
}

// NewNoveltyCategoryRepository construye el adaptador de lectura de categorías.
func NewNoveltyCategoryRepository(q Querier) *NoveltyCategoryRepo {
	return &NoveltyCategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID.
func (r *NoveltyCategoryRepo) GetByID(id int64) (*entity.NoveltyCategory, error) {
	query := `SELECT id, name FROM novelty_categories WHERE id = $1`
	var c entity.NoveltyCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get novelty category: %w", err)
	}
	return &c, nil
}

// List lista las categorías ordenadas por ID.
func (r *NoveltyCategoryRepo) List() ([]*entity.NoveltyCategory, error) {
	query := `SELECT id, name FROM novelty_categories ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list novelty categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.NoveltyCategory
	for rows.Next() {
		var c entity.NoveltyCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan novelty category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
