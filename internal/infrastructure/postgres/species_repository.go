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

var _ repository.SpeciesRepository = (*SpeciesRepo)(nil)

// SpeciesRepo implementación del puerto SpeciesRepository sobre PostgreSQL.
type SpeciesRepo struct {
	q Querier
}

// NewSpeciesRepository construye el adaptador de persistencia para especies. Pasar pool o tx (Querier).
func NewSpeciesRepository(q Querier) *SpeciesRepo {
	return &SpeciesRepo{q: q}
}

// Create persiste una nueva especie.
func (r *SpeciesRepo) Create(s *entity.Species) error {
	query := `INSERT INTO species (name) VALUES ($1) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, s.Name).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert species: %w", err)
	}
	return nil
}

// GetByID obtiene una especie por ID.
func (r *SpeciesRepo) GetByID(id int64) (*entity.Species, error) {
	query := `SELECT id, name FROM species WHERE id = $1`
	var s entity.Species
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get species: %w", err)
	}
	return &s, nil
}

// List lista las especies ordenadas por ID.
func (r *SpeciesRepo) List() ([]*entity.Species, error) {
	query := `SELECT id, name FROM species ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()

	var out []*entity.Species
	for rows.Next() {
		var s entity.Species
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update actualiza el nombre de una especie.
func (r *SpeciesRepo) Update(s *entity.Species) error {
	query := `UPDATE species SET name = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update species: %w", err)
	}
	return nil
}

// Delete elimina una especie. Falla con ErrReferenceData si hay lotes que la usan.
func (r *SpeciesRepo) Delete(id int64) error {
	query := `DELETE FROM species WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la especie tiene lotes asociados", domain.ErrReferenceData)
		}
		return fmt.Errorf("delete species: %w", err)
	}
	return nil
}

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo implementación del puerto StateRepository sobre PostgreSQL.
// El catálogo de estados lo siembra la migración inicial; aquí solo se lee.
type StateRepo struct {
	q Querier
}

// NewStateRepository construye el adaptador de lectura de estados.
func NewStateRepository(q Querier) *StateRepo {
	return &StateRepo{q: q}
}

// GetByID obtiene un estado por ID.
func (r *StateRepo) GetByID(id int64) (*entity.State, error) {
	query := `SELECT id, name FROM states WHERE id = $1`
	var s entity.State
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get state: %w", err)
	}
	return &s, nil
}

// List lista los estados ordenados por ID.
func (r *StateRepo) List() ([]*entity.State, error) {
	query := `SELECT id, name FROM states ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()

	var out []*entity.State
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
