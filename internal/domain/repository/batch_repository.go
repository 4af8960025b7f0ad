package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// BatchRepository puerto de persistencia para lotes.
// No hay Delete: el borrado de un lote es un cambio de estado (UpdateState a
// Inactivo), nunca la eliminación de la fila. Los llamadores no deben asumir
// otra semántica.
type BatchRepository interface {
	Create(b *entity.Batch) error
	GetByID(id int64) (*entity.Batch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Batch, error)
	List() ([]*entity.Batch, error)
	ListByState(stateID int64) ([]*entity.Batch, error)
	Update(b *entity.Batch) error
	UpdateState(id, stateID int64) error
}
