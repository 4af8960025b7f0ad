package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// FormGateway conecta las sesiones de formulario con los casos de uso: persiste
// candidatos aceptados y entrega instantáneas de registros para editar.
// Cada persistencia pasa de nuevo por el caso de uso, que corre su propia
// compuerta: la validación es una sola ruta aunque el candidato ya venga aceptado.
type FormGateway struct {
	species    *SpeciesUseCase
	batches    *BatchUseCase
	supplies   *SupplyUseCase
	novelties  *NoveltyUseCase
	production *ProductionUseCase
	expenses   *ExpenseUseCase

	batchRepo   repository.BatchRepository
	speciesRepo repository.SpeciesRepository
	supplyRepo  repository.SupplyRepository
	noveltyRepo repository.NoveltyRepository
	expenseRepo repository.ExpenseRepository
}

// NewFormGateway construye el adaptador.
func NewFormGateway(
	species *SpeciesUseCase,
	batches *BatchUseCase,
	supplies *SupplyUseCase,
	novelties *NoveltyUseCase,
	production *ProductionUseCase,
	expenses *ExpenseUseCase,
	batchRepo repository.BatchRepository,
	speciesRepo repository.SpeciesRepository,
	supplyRepo repository.SupplyRepository,
	noveltyRepo repository.NoveltyRepository,
	expenseRepo repository.ExpenseRepository,
) *FormGateway {
	return &FormGateway{
		species:     species,
		batches:     batches,
		supplies:    supplies,
		novelties:   novelties,
		production:  production,
		expenses:    expenses,
		batchRepo:   batchRepo,
		speciesRepo: speciesRepo,
		supplyRepo:  supplyRepo,
		noveltyRepo: noveltyRepo,
		expenseRepo: expenseRepo,
	}
}

// Create persiste un candidato nuevo del tipo indicado.
func (g *FormGateway) Create(kind string, vals forms.Values) (interface{}, error) {
	switch kind {
	case "species":
		return g.species.Create(speciesRequestFromValues(vals))
	case "batch":
		return g.batches.Create(batchRequestFromValues(vals))
	case "supply":
		return g.supplies.Create(supplyRequestFromValues(vals))
	case "novelty":
		return g.novelties.Create(noveltyRequestFromValues(vals))
	case "production":
		return g.production.Create(context.Background(), productionRequestFromValues(vals))
	case "expense":
		return g.expenses.Create(expenseRequestFromValues(vals))
	}
	return nil, fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, kind)
}

// Update persiste un candidato sobre un registro existente.
func (g *FormGateway) Update(kind string, id int64, vals forms.Values) (interface{}, error) {
	var (
		rec interface{}
		err error
	)
	switch kind {
	case "species":
		rec, err = g.species.Update(id, speciesRequestFromValues(vals))
	case "batch":
		rec, err = g.batches.Update(id, batchRequestFromValues(vals))
	case "supply":
		rec, err = g.supplies.Update(id, supplyRequestFromValues(vals))
	case "novelty":
		rec, err = g.novelties.Update(id, noveltyRequestFromValues(vals))
	case "expense":
		rec, err = g.expenses.Update(id, expenseRequestFromValues(vals))
	case "production":
		// Las producciones son inmutables: se registran, no se corrigen.
		return nil, domain.ErrImmutableRecord
	default:
		return nil, fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, kind)
	}
	if err != nil {
		return nil, err
	}
	if isNilResponse(rec) {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// Snapshot entrega el registro existente como valores crudos de control, en el
// mismo formato que el normalizador vuelve a leer sin pérdida.
func (g *FormGateway) Snapshot(kind string, id int64) (map[string]string, error) {
	switch kind {
	case "species":
		s, err := g.speciesRepo.GetByID(id)
		if err != nil || s == nil {
			return nil, err
		}
		return map[string]string{forms.FieldSpecieName: s.Name}, nil

	case "batch":
		b, err := g.batchRepo.GetByID(id)
		if err != nil || b == nil {
			return nil, err
		}
		return map[string]string{
			forms.FieldSpeciesID:     strconv.FormatInt(b.SpeciesID, 10),
			forms.FieldStateID:       strconv.FormatInt(b.StateID, 10),
			forms.FieldUnitCost:      forms.FormatDecimal(b.UnitCost),
			forms.FieldTotalQuantity: strconv.FormatInt(b.TotalQuantity, 10),
			forms.FieldWeightBatch:   forms.FormatDecimal(b.WeightBatch),
			forms.FieldAgeBatch:      strconv.FormatInt(b.AgeBatch, 10),
		}, nil

	case "supply":
		s, err := g.supplyRepo.GetByID(id)
		if err != nil || s == nil {
			return nil, err
		}
		return map[string]string{
			forms.FieldSupplyCategoryID: strconv.FormatInt(s.CategoryID, 10),
			forms.FieldSupplieName:      s.Name,
		}, nil

	case "novelty":
		n, err := g.noveltyRepo.GetByID(id)
		if err != nil || n == nil {
			return nil, err
		}
		return map[string]string{
			forms.FieldNoveltyCategoryID: strconv.FormatInt(n.CategoryID, 10),
			forms.FieldBatchID:           strconv.FormatInt(n.BatchID, 10),
			forms.FieldNoveltyQuantity:   strconv.FormatInt(n.Quantity, 10),
			forms.FieldNoveltyDate:       n.Date.Format("2006-01-02"),
			forms.FieldDescription:       n.Description,
		}, nil

	case "expense":
		e, err := g.expenseRepo.GetByID(id)
		if err != nil || e == nil {
			return nil, err
		}
		return map[string]string{
			forms.FieldSupplyID:    strconv.FormatInt(e.SupplyID, 10),
			forms.FieldBatchID:     strconv.FormatInt(e.BatchID, 10),
			forms.FieldExpCost:     forms.FormatDecimal(e.Cost),
			forms.FieldExpQuantity: forms.FormatDecimal(e.Quantity),
			forms.FieldDescription: e.Description,
		}, nil
	}
	return nil, fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, kind)
}

func speciesRequestFromValues(vals forms.Values) dto.SaveSpeciesRequest {
	name, _ := vals.String(forms.FieldSpecieName)
	return dto.SaveSpeciesRequest{SpecieName: name}
}

func batchRequestFromValues(vals forms.Values) dto.SaveBatchRequest {
	var in dto.SaveBatchRequest
	in.UnitCost, _ = vals.Decimal(forms.FieldUnitCost)
	in.TotalQuantity, _ = vals.Int(forms.FieldTotalQuantity)
	in.WeightBatch, _ = vals.Decimal(forms.FieldWeightBatch)
	in.AgeBatch, _ = vals.Int(forms.FieldAgeBatch)
	in.SpeciesID, _ = vals.Int(forms.FieldSpeciesID)
	in.StateID, _ = vals.Int(forms.FieldStateID)
	return in
}

func supplyRequestFromValues(vals forms.Values) dto.SaveSupplyRequest {
	var in dto.SaveSupplyRequest
	in.SupplieName, _ = vals.String(forms.FieldSupplieName)
	in.CategoryID, _ = vals.Int(forms.FieldSupplyCategoryID)
	return in
}

func noveltyRequestFromValues(vals forms.Values) dto.SaveNoveltyRequest {
	var in dto.SaveNoveltyRequest
	in.Quantity, _ = vals.Int(forms.FieldNoveltyQuantity)
	in.Description, _ = vals.String(forms.FieldDescription)
	if d, ok := vals.Date(forms.FieldNoveltyDate); ok {
		in.DateNovelty = d.Format("2006-01-02")
	}
	in.BatchID, _ = vals.Int(forms.FieldBatchID)
	in.CategoryID, _ = vals.Int(forms.FieldNoveltyCategoryID)
	return in
}

func productionRequestFromValues(vals forms.Values) dto.CreateProductionRequest {
	var in dto.CreateProductionRequest
	in.BatchID, _ = vals.Int(forms.FieldBatchID)
	in.AvgWeight, _ = vals.Decimal(forms.FieldAvgWeight)
	in.WeightCost, _ = vals.Decimal(forms.FieldWeightCost)
	return in
}

func expenseRequestFromValues(vals forms.Values) dto.SaveExpenseRequest {
	var in dto.SaveExpenseRequest
	in.SupplyID, _ = vals.Int(forms.FieldSupplyID)
	in.BatchID, _ = vals.Int(forms.FieldBatchID)
	in.Description, _ = vals.String(forms.FieldDescription)
	in.Cost, _ = vals.Decimal(forms.FieldExpCost)
	in.Quantity, _ = vals.Decimal(forms.FieldExpQuantity)
	return in
}

// isNilResponse detecta el "no encontrado" que los casos de uso señalan
// devolviendo un puntero nil tipado.
func isNilResponse(rec interface{}) bool {
	switch v := rec.(type) {
	case *dto.SpeciesResponse:
		return v == nil
	case *dto.BatchResponse:
		return v == nil
	case *dto.SupplyResponse:
		return v == nil
	case *dto.NoveltyResponse:
		return v == nil
	case *dto.ExpenseResponse:
		return v == nil
	}
	return rec == nil
}
