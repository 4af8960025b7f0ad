package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ProductionUseCase registra ventas de producción contra un lote.
// La creación corre en transacción: la fila del lote se bloquea (SELECT FOR
// UPDATE) para que la cabeza de ganado usada en los derivados no cambie entre
// la validación y el insert. Un registro persistido es inmutable.
type ProductionUseCase struct {
	txRunner ProductionTxRunner
	prodRepo repository.ProductionRepository
	refs     *ReferenceService
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(txRunner ProductionTxRunner, prodRepo repository.ProductionRepository, refs *ReferenceService) *ProductionUseCase {
	return &ProductionUseCase{txRunner: txRunner, prodRepo: prodRepo, refs: refs}
}

// Create valida con el snapshot de lotes activos, recalcula los derivados con la
// cabeza de ganado autoritativa dentro de la transacción y persiste.
func (uc *ProductionUseCase) Create(ctx context.Context, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	refs, err := uc.refs.Sets(forms.SetBatches)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	raw := map[string]string{
		forms.FieldBatchID:    strconv.FormatInt(in.BatchID, 10),
		forms.FieldAvgWeight:  forms.FormatDecimal(in.AvgWeight),
		forms.FieldWeightCost: forms.FormatDecimal(in.WeightCost),
	}
	vals, violations := forms.Process(forms.ProductionSpec, raw, refs)
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	var out *entity.Production
	err = uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, prodRepo repository.ProductionRepository) error {
		batch, err := batchRepo.GetForUpdate(in.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		if !batch.Active() {
			return domain.ErrBatchInactive
		}

		// Recalcular con la fila bloqueada: el snapshot pudo quedarse viejo.
		locked := forms.OptionSets{
			forms.SetBatches: {{ID: batch.ID, Headcount: batch.TotalQuantity}},
		}
		vals = forms.Calculate(forms.ProductionSpec, vals, locked)
		totalWeight, okW := vals.Derived(forms.FieldTotalWeight)
		totalProduction, okP := vals.Derived(forms.FieldTotalProduction)
		if !okW || !okP {
			return domain.ErrInvalidInput
		}

		out = &entity.Production{
			BatchID:         batch.ID,
			Date:            time.Now(),
			AvgWeight:       in.AvgWeight,
			WeightCost:      in.WeightCost,
			TotalWeight:     totalWeight,
			TotalProduction: totalProduction,
		}
		return prodRepo.Create(out)
	})
	if err != nil {
		return nil, err
	}
	return toProductionResponse(out), nil
}

// GetByID obtiene un registro de producción por ID.
func (uc *ProductionUseCase) GetByID(id int64) (*dto.ProductionResponse, error) {
	p, err := uc.prodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductionResponse(p), nil
}

// List lista todos los registros de producción.
func (uc *ProductionUseCase) List() (*dto.ProductionListResponse, error) {
	list, err := uc.prodRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductionResponse(p))
	}
	return &dto.ProductionListResponse{Data: items}, nil
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:              p.ID,
		BatchID:         p.BatchID,
		DateProduction:  p.Date.Format("2006-01-02"),
		AvgWeight:       p.AvgWeight,
		TotalWeight:     p.TotalWeight,
		WeightCost:      p.WeightCost,
		TotalProduction: p.TotalProduction,
	}
}
