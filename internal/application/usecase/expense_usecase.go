package usecase

import (
	"fmt"
	"strconv"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos de producción: creación y edición en
// sitio, sin camino de borrado. El total (Cost × Quantity) jamás se persiste;
// se recalcula al responder.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
	refs *ReferenceService
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, refs *ReferenceService) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, refs: refs}
}

// Create valida contra insumos y lotes activos y persiste.
func (uc *ExpenseUseCase) Create(in dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	e := expenseFromValues(vals)
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id int64) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toExpenseResponse(e), nil
}

// List lista todos los gastos.
func (uc *ExpenseUseCase) List() (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{Data: items}, nil
}

// Update reemplaza el gasto completo tras revalidar.
func (uc *ExpenseUseCase) Update(id int64, in dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
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
	e := expenseFromValues(vals)
	e.ID = existing.ID
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

func (uc *ExpenseUseCase) gate(in dto.SaveExpenseRequest) (forms.Values, error) {
	refs, err := uc.refs.Sets(forms.SetSupplies, forms.SetBatches)
	if err != nil {
		return forms.Values{}, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	raw := map[string]string{
		forms.FieldSupplyID:    strconv.FormatInt(in.SupplyID, 10),
		forms.FieldBatchID:     strconv.FormatInt(in.BatchID, 10),
		forms.FieldExpCost:     forms.FormatDecimal(in.Cost),
		forms.FieldExpQuantity: forms.FormatDecimal(in.Quantity),
		forms.FieldDescription: in.Description,
	}
	vals, violations := forms.Process(forms.ExpenseSpec, raw, refs)
	if len(violations) > 0 {
		return forms.Values{}, &domain.ValidationError{Violations: violations}
	}
	return vals, nil
}

func expenseFromValues(vals forms.Values) *entity.Expense {
	supplyID, _ := vals.Int(forms.FieldSupplyID)
	batchID, _ := vals.Int(forms.FieldBatchID)
	description, _ := vals.String(forms.FieldDescription)
	cost, _ := vals.Decimal(forms.FieldExpCost)
	qty, _ := vals.Decimal(forms.FieldExpQuantity)
	return &entity.Expense{
		SupplyID:    supplyID,
		BatchID:     batchID,
		Description: description,
		Cost:        cost,
		Quantity:    qty,
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		SupplyID:    e.SupplyID,
		BatchID:     e.BatchID,
		Description: e.Description,
		Cost:        e.Cost,
		Quantity:    e.Quantity,
		Total:       e.Cost.Mul(e.Quantity).Round(2),
	}
}
