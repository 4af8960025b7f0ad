package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// ProductionRepository puerto de persistencia para registros de producción.
// Solo creación y lectura: un registro de producción es inmutable una vez
// persistido, no existe camino de edición ni borrado.
type ProductionRepository interface {
	Create(p *entity.Production) error
	GetByID(id int64) (*entity.Production, error)
	List() ([]*entity.Production, error)
}
