package usecase

import (
	"context"

	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ProductionTxRunner ejecuta una función dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Garantiza que la cabeza de ganado leída
// del lote y el registro de producción insertado sean consistentes.
type ProductionTxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		prodRepo repository.ProductionRepository,
	) error) error
}
