package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// NoveltyRepository puerto de persistencia para novedades.
type NoveltyRepository interface {
	Create(n *entity.Novelty) error
	GetByID(id int64) (*entity.Novelty, error)
	List() ([]*entity.Novelty, error)
	Update(n *entity.Novelty) error
	Delete(id int64) error
}

// NoveltyCategoryRepository puerto de lectura de categorías de novedades.
type NoveltyCategoryRepository interface {
	GetByID(id int64) (*entity.NoveltyCategory, error)
	List() ([]*entity.NoveltyCategory, error)
}
