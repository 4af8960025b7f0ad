package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// SpeciesRepository puerto de persistencia para especies.
type SpeciesRepository interface {
	Create(s *entity.Species) error
	GetByID(id int64) (*entity.Species, error)
	List() ([]*entity.Species, error)
	Update(s *entity.Species) error
	Delete(id int64) error
}

// StateRepository puerto de lectura de estados (catálogo sembrado por migración).
type StateRepository interface {
	GetByID(id int64) (*entity.State, error)
	List() ([]*entity.State, error)
}
