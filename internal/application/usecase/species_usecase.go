package usecase

import (
	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// SpeciesUseCase casos de uso CRUD para especies.
type SpeciesUseCase struct {
	repo repository.SpeciesRepository
}

// NewSpeciesUseCase construye el caso de uso.
func NewSpeciesUseCase(repo repository.SpeciesRepository) *SpeciesUseCase {
	return &SpeciesUseCase{repo: repo}
}

// Create valida el nombre con el motor de formularios (allow-list incluida) y persiste.
func (uc *SpeciesUseCase) Create(in dto.SaveSpeciesRequest) (*dto.SpeciesResponse, error) {
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	name, _ := vals.String(forms.FieldSpecieName)
	s := &entity.Species{Name: name}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSpeciesResponse(s), nil
}

// GetByID obtiene una especie por ID.
func (uc *SpeciesUseCase) GetByID(id int64) (*dto.SpeciesResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSpeciesResponse(s), nil
}

// List lista todas las especies.
func (uc *SpeciesUseCase) List() (*dto.SpeciesListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SpeciesResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSpeciesResponse(s))
	}
	return &dto.SpeciesListResponse{Data: items}, nil
}

// Update actualiza el nombre de una especie existente.
func (uc *SpeciesUseCase) Update(id int64, in dto.SaveSpeciesRequest) (*dto.SpeciesResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	vals, err := uc.gate(in)
	if err != nil {
		return nil, err
	}
	s.Name, _ = vals.String(forms.FieldSpecieName)
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSpeciesResponse(s), nil
}

// Delete elimina una especie por ID.
func (uc *SpeciesUseCase) Delete(id int64) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// gate corre Normalize+Gate sobre la entrada; las especies no tienen derivados.
func (uc *SpeciesUseCase) gate(in dto.SaveSpeciesRequest) (forms.Values, error) {
	raw := map[string]string{forms.FieldSpecieName: in.SpecieName}
	vals, violations := forms.Process(forms.SpeciesSpec, raw, nil)
	if len(violations) > 0 {
		return forms.Values{}, &domain.ValidationError{Violations: violations}
	}
	return vals, nil
}

func toSpeciesResponse(s *entity.Species) *dto.SpeciesResponse {
	return &dto.SpeciesResponse{ID: s.ID, SpecieName: s.Name}
}

// StateUseCase lectura del catálogo de estados (sembrado por la migración inicial).
type StateUseCase struct {
	repo repository.StateRepository
}

// NewStateUseCase construye el caso de uso.
func NewStateUseCase(repo repository.StateRepository) *StateUseCase {
	return &StateUseCase{repo: repo}
}

// List lista los estados disponibles para los selects de lote.
func (uc *StateUseCase) List() (*dto.StateListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StateResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StateResponse{ID: s.ID, StateName: s.Name})
	}
	return &dto.StateListResponse{Data: items}, nil
}
