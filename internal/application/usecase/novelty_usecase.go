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

// NoveltyUseCase casos de uso CRUD para novedades de lote.
type NoveltyUseCase struct {
	repo repository.NoveltyRepository
	cats repository.NoveltyCategoryRepository
	refs *ReferenceService
}

// NewNoveltyUseCase construye el caso de uso.
func NewNoveltyUseCase(repo repository.NoveltyRepository, cats repository.NoveltyCategoryRepository, refs *ReferenceService) *NoveltyUseCase {
	return &NoveltyUseCase{repo: repo, cats: cats, refs: refs}
}

// Create valida la novedad contra categorías y lotes vigentes y persiste.
func (uc *NoveltyUseCase) Create(in dto.SaveNoveltyRequest) (*dto.NoveltyResponse, error) {
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	n := noveltyFromValues(vals)
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNoveltyResponse(n), nil
}

// GetByID obtiene una novedad por ID.
func (uc *NoveltyUseCase) GetByID(id int64) (*dto.NoveltyResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return toNoveltyResponse(n), nil
}

// List lista todas las novedades.
func (uc *NoveltyUseCase) List() (*dto.NoveltyListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoveltyResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNoveltyResponse(n))
	}
	return &dto.NoveltyListResponse{Data: items}, nil
}

// Update actualiza una novedad existente.
func (uc *NoveltyUseCase) Update(id int64, in dto.SaveNoveltyRequest) (*dto.NoveltyResponse, error) {
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
	n := noveltyFromValues(vals)
	n.ID = existing.ID
	if err := uc.repo.Update(n); err != nil {
		return nil, err
	}
	return toNoveltyResponse(n), nil
}

// Delete elimina una novedad por ID.
func (uc *NoveltyUseCase) Delete(id int64) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListCategories lista las categorías de novedad.
func (uc *NoveltyUseCase) ListCategories() (*dto.NoveltyCategoryListResponse, error) {
	list, err := uc.cats.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoveltyCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NoveltyCategoryResponse{ID: c.ID, CategoryName: c.Name})
	}
	return &dto.NoveltyCategoryListResponse{Data: items}, nil
}

func (uc *NoveltyUseCase) gate(in dto.SaveNoveltyRequest) (forms.Values, error) {
	refs, err := uc.refs.Sets(forms.SetNoveltyCategories, forms.SetBatches)
	if err != nil {
		return forms.Values{}, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	raw := map[string]string{
		forms.FieldNoveltyCategoryID: strconv.FormatInt(in.CategoryID, 10),
		forms.FieldBatchID:           strconv.FormatInt(in.BatchID, 10),
		forms.FieldNoveltyQuantity:   strconv.FormatInt(in.Quantity, 10),
		forms.FieldNoveltyDate:       in.DateNovelty,
		forms.FieldDescription:       in.Description,
	}
	vals, violations := forms.Process(forms.NoveltySpec, raw, refs)
	if len(violations) > 0 {
		return forms.Values{}, &domain.ValidationError{Violations: violations}
	}
	return vals, nil
}

func noveltyFromValues(vals forms.Values) *entity.Novelty {
	qty, _ := vals.Int(forms.FieldNoveltyQuantity)
	desc, _ := vals.String(forms.FieldDescription)
	date, _ := vals.Date(forms.FieldNoveltyDate)
	batchID, _ := vals.Int(forms.FieldBatchID)
	catID, _ := vals.Int(forms.FieldNoveltyCategoryID)
	return &entity.Novelty{
		Quantity:    qty,
		Description: desc,
		Date:        date,
		BatchID:     batchID,
		CategoryID:  catID,
	}
}

func toNoveltyResponse(n *entity.Novelty) *dto.NoveltyResponse {
	return &dto.NoveltyResponse{
		ID:          n.ID,
		Quantity:    n.Quantity,
		Description: n.Description,
		DateNovelty: n.Date.Format("2006-01-02"),
		BatchID:     n.BatchID,
		CategoryID:  n.CategoryID,
	}
}
