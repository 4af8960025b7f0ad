package usecase

import (
	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// DashboardUseCase agrega las cifras de las tarjetas del tablero.
type DashboardUseCase struct {
	repo repository.SummaryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.SummaryRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los agregados actuales.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryResponse, error) {
	s, err := uc.repo.Summary()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		ActiveBatches:   s.ActiveBatches,
		SpeciesCount:    s.SpeciesCount,
		NoveltyCount:    s.NoveltyCount,
		TotalProduction: s.TotalProduction.Round(2),
		TotalExpenses:   s.TotalExpenses.Round(2),
	}, nil
}
