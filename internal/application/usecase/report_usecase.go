package usecase

import (
	"fmt"
	"time"

	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// ProductionReportGenerator genera el PDF del informe de producción.
type ProductionReportGenerator interface {
	GenerateProductionReport(appName string, generatedAt time.Time, productions []*entity.Production) ([]byte, error)
}

// ReportUseCase arma el informe de producción descargable.
type ReportUseCase struct {
	prodRepo  repository.ProductionRepository
	generator ProductionReportGenerator
	appName   string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(prodRepo repository.ProductionRepository, generator ProductionReportGenerator, appName string) *ReportUseCase {
	return &ReportUseCase{prodRepo: prodRepo, generator: generator, appName: appName}
}

// ProductionReport genera el PDF con todos los registros de producción.
// Retorna los bytes del documento y el nombre de archivo sugerido.
func (uc *ReportUseCase) ProductionReport() ([]byte, string, error) {
	productions, err := uc.prodRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("report: listar producciones: %w", err)
	}
	now := time.Now()
	pdfBytes, err := uc.generator.GenerateProductionReport(uc.appName, now, productions)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("informe_produccion_%s.pdf", now.Format("20060102"))
	return pdfBytes, filename, nil
}
