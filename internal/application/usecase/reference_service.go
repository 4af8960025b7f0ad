package usecase

import (
	"fmt"

	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ReferenceService proveedor de datos de referencia: entrega los conjuntos de
// opciones {id, name, ...} contra los que el Gate verifica existencia.
// El conjunto de lotes solo incluye lotes activos, con su cabeza de ganado
// (Headcount) para el cálculo de producción: no se vende contra un lote borrado.
type ReferenceService struct {
	species     repository.SpeciesRepository
	states      repository.StateRepository
	batches     repository.BatchRepository
	supplies    repository.SupplyRepository
	supplyCats  repository.SupplyCategoryRepository
	noveltyCats repository.NoveltyCategoryRepository
}

// NewReferenceService construye el proveedor con los repositorios de catálogo.
func NewReferenceService(
	species repository.SpeciesRepository,
	states repository.StateRepository,
	batches repository.BatchRepository,
	supplies repository.SupplyRepository,
	supplyCats repository.SupplyCategoryRepository,
	noveltyCats repository.NoveltyCategoryRepository,
) *ReferenceService {
	return &ReferenceService{
		species:     species,
		states:      states,
		batches:     batches,
		supplies:    supplies,
		supplyCats:  supplyCats,
		noveltyCats: noveltyCats,
	}
}

// Load carga un conjunto de opciones por nombre, en el orden del repositorio.
func (s *ReferenceService) Load(set string) ([]forms.Option, error) {
	switch set {
	case forms.SetSpecies:
		list, err := s.species.List()
		if err != nil {
			return nil, fmt.Errorf("cargar especies: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, e := range list {
			out = append(out, forms.Option{ID: e.ID, Name: e.Name})
		}
		return out, nil

	case forms.SetStates:
		list, err := s.states.List()
		if err != nil {
			return nil, fmt.Errorf("cargar estados: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, e := range list {
			out = append(out, forms.Option{ID: e.ID, Name: e.Name})
		}
		return out, nil

	case forms.SetBatches:
		list, err := s.batches.ListByState(entity.StateActive)
		if err != nil {
			return nil, fmt.Errorf("cargar lotes: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, b := range list {
			out = append(out, forms.Option{
				ID:        b.ID,
				Name:      fmt.Sprintf("Lote %d", b.ID),
				Headcount: b.TotalQuantity,
			})
		}
		return out, nil

	case forms.SetSupplies:
		list, err := s.supplies.List()
		if err != nil {
			return nil, fmt.Errorf("cargar insumos: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, e := range list {
			out = append(out, forms.Option{ID: e.ID, Name: e.Name})
		}
		return out, nil

	case forms.SetSupplyCategories:
		list, err := s.supplyCats.List()
		if err != nil {
			return nil, fmt.Errorf("cargar categorías de insumos: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, e := range list {
			out = append(out, forms.Option{ID: e.ID, Name: e.Name})
		}
		return out, nil

	case forms.SetNoveltyCategories:
		list, err := s.noveltyCats.List()
		if err != nil {
			return nil, fmt.Errorf("cargar categorías de novedades: %w", err)
		}
		out := make([]forms.Option, 0, len(list))
		for _, e := range list {
			out = append(out, forms.Option{ID: e.ID, Name: e.Name})
		}
		return out, nil
	}
	return nil, fmt.Errorf("conjunto de referencia desconocido: %q", set)
}

// Sets carga varios conjuntos y los agrupa para el motor de formularios.
func (s *ReferenceService) Sets(names ...string) (forms.OptionSets, error) {
	out := make(forms.OptionSets, len(names))
	for _, name := range names {
		opts, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = opts
	}
	return out, nil
}
