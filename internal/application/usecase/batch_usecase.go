package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// BatchUseCase casos de uso para lotes. Cost es derivado: lo fija el motor de
// formularios a partir de Unit_Cost × Total_Quantity, nunca viene del cliente.
type BatchUseCase struct {
	repo repository.BatchRepository
	refs *ReferenceService
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(repo repository.BatchRepository, refs *ReferenceService) *BatchUseCase {
	return &BatchUseCase{repo: repo, refs: refs}
}

// Create valida contra especies y estados vigentes, calcula Cost y persiste.
// El estado por defecto en creación es Activo.
func (uc *BatchUseCase) Create(in dto.SaveBatchRequest) (*dto.BatchResponse, error) {
	if in.StateID == 0 {
		in.StateID = entity.StateActive
	}
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	b := batchFromValues(vals)
	b.StartingDate = time.Now()
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBatchResponse(b), nil
}

// GetByID obtiene un lote por ID.
func (uc *BatchUseCase) GetByID(id int64) (*dto.BatchResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBatchResponse(b), nil
}

// List lista todos los lotes, activos e inactivos.
func (uc *BatchUseCase) List() (*dto.BatchListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b))
	}
	return &dto.BatchListResponse{Data: items}, nil
}

// Update reemplaza el registro completo (el formulario edita y reenvía todo);
// Starting_Date se conserva y Cost se recalcula.
func (uc *BatchUseCase) Update(id int64, in dto.SaveBatchRequest) (*dto.BatchResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	b := batchFromValues(vals)
	b.ID = existing.ID
	b.StartingDate = existing.StartingDate
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBatchResponse(b), nil
}

// Delete borra lógicamente: el estado pasa a Inactivo. La fila nunca se elimina;
// este es el contrato uniforme del recurso, también para el verbo DELETE.
func (uc *BatchUseCase) Delete(id int64) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateState(id, entity.StateInactive)
}

// gate corre el flujo completo del motor: los valores tipados pasan por el
// mismo camino que la entrada cruda (formateo sin pérdida + Normalize), así
// existe una sola implementación de las reglas.
func (uc *BatchUseCase) gate(in dto.SaveBatchRequest) (forms.Values, error) {
	refs, err := uc.refs.Sets(forms.SetSpecies, forms.SetStates)
	if err != nil {
		return forms.Values{}, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	raw := map[string]string{
		forms.FieldSpeciesID:     strconv.FormatInt(in.SpeciesID, 10),
		forms.FieldStateID:       strconv.FormatInt(in.StateID, 10),
		forms.FieldUnitCost:      forms.FormatDecimal(in.UnitCost),
		forms.FieldTotalQuantity: strconv.FormatInt(in.TotalQuantity, 10),
		forms.FieldWeightBatch:   forms.FormatDecimal(in.WeightBatch),
		forms.FieldAgeBatch:      strconv.FormatInt(in.AgeBatch, 10),
	}
	vals, violations := forms.Process(forms.BatchSpec, raw, refs)
	if len(violations) > 0 {
		return forms.Values{}, &domain.ValidationError{Violations: violations}
	}
	return vals, nil
}

func batchFromValues(vals forms.Values) *entity.Batch {
	unitCost, _ := vals.Decimal(forms.FieldUnitCost)
	qty, _ := vals.Int(forms.FieldTotalQuantity)
	cost, _ := vals.Derived(forms.FieldCost)
	weight, _ := vals.Decimal(forms.FieldWeightBatch)
	age, _ := vals.Int(forms.FieldAgeBatch)
	speciesID, _ := vals.Int(forms.FieldSpeciesID)
	stateID, _ := vals.Int(forms.FieldStateID)
	return &entity.Batch{
		UnitCost:      unitCost,
		TotalQuantity: qty,
		Cost:          cost,
		WeightBatch:   weight,
		AgeBatch:      age,
		SpeciesID:     speciesID,
		StateID:       stateID,
	}
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:            b.ID,
		UnitCost:      b.UnitCost,
		TotalQuantity: b.TotalQuantity,
		Cost:          b.Cost,
		WeightBatch:   b.WeightBatch,
		AgeBatch:      b.AgeBatch,
		SpeciesID:     b.SpeciesID,
		StateID:       b.StateID,
		StartingDate:  b.StartingDate.Format("2006-01-02"),
	}
}
