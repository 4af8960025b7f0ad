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

// SupplyUseCase casos de uso CRUD para el catálogo de insumos.
type SupplyUseCase struct {
	repo repository.SupplyRepository
	cats repository.SupplyCategoryRepository
	refs *ReferenceService
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(repo repository.SupplyRepository, cats repository.SupplyCategoryRepository, refs *ReferenceService) *SupplyUseCase {
	return &SupplyUseCase{repo: repo, cats: cats, refs: refs}
}

// Create valida nombre y categoría y persiste.
func (uc *SupplyUseCase) Create(in dto.SaveSupplyRequest) (*dto.SupplyResponse, error) {
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	s := supplyFromValues(vals)
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupplyResponse(s), nil
}

// GetByID obtiene un insumo por ID.
func (uc *SupplyUseCase) GetByID(id int64) (*dto.SupplyResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSupplyResponse(s), nil
}

// List lista todos los insumos.
func (uc *SupplyUseCase) List() (*dto.SupplyListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplyResponse(s))
	}
	return &dto.SupplyListResponse{Data: items}, nil
}

// Update actualiza un insumo existente.
func (uc *SupplyUseCase) Update(id int64, in dto.SaveSupplyRequest) (*dto.SupplyResponse, error) {
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
	s := supplyFromValues(vals)
	s.ID = existing.ID
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSupplyResponse(s), nil
}

// Delete elimina un insumo por ID.
func (uc *SupplyUseCase) Delete(id int64) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListCategories lista las categorías del catálogo.
func (uc *SupplyUseCase) ListCategories() (*dto.SupplyCategoryListResponse, error) {
	list, err := uc.cats.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplyCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.SupplyCategoryResponse{ID: c.ID, CategoryName: c.Name})
	}
	return &dto.SupplyCategoryListResponse{Data: items}, nil
}

func (uc *SupplyUseCase) gate(in dto.SaveSupplyRequest) (forms.Values, error) {
	refs, err := uc.refs.Sets(forms.SetSupplyCategories)
	if err != nil {
		return forms.Values{}, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	raw := map[string]string{
		forms.FieldSupplyCategoryID: strconv.FormatInt(in.CategoryID, 10),
		forms.FieldSupplieName:      in.SupplieName,
	}
	vals, violations := forms.Process(forms.SupplySpec, raw, refs)
	if len(violations) > 0 {
		return forms.Values{}, &domain.ValidationError{Violations: violations}
	}
	return vals, nil
}

func supplyFromValues(vals forms.Values) *entity.Supply {
	name, _ := vals.String(forms.FieldSupplieName)
	catID, _ := vals.Int(forms.FieldSupplyCategoryID)
	return &entity.Supply{Name: name, CategoryID: catID}
}

func toSupplyResponse(s *entity.Supply) *dto.SupplyResponse {
	return &dto.SupplyResponse{ID: s.ID, SupplieName: s.Name, CategoryID: s.CategoryID}
}
