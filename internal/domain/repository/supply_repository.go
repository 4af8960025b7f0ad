package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// SupplyRepository puerto de persistencia para insumos del catálogo.
type SupplyRepository interface {
	Create(s *entity.Supply) error
	GetByID(id int64) (*entity.Supply, error)
	List() ([]*entity.Supply, error)
	Update(s *entity.Supply) error
	Delete(id int64) error
}

// SupplyCategoryRepository puerto de lectura de categorías de insumos.
type SupplyCategoryRepository interface {
	GetByID(id int64) (*entity.SupplyCategory, error)
	List() ([]*entity.SupplyCategory, error)
}
