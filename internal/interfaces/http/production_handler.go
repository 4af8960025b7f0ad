package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para producciones (protegido).
// Solo creación y lectura: los registros de producción son inmutables.
type ProductionHandler struct {
	uc     *usecase.ProductionUseCase
	report *usecase.ReportUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase, report *usecase.ReportUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Registrar producción/venta
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Datos de la producción"
// @Success      201   {object}  dto.ProductionDataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/productions [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductionDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener producción por ID
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la producción"
// @Success      200  {object}  dto.ProductionDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productions/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producción no encontrada"})
	}
	return c.JSON(dto.ProductionDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar producciones
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductionListResponse
// @Router       /api/productions [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Descargar informe de producción en PDF
// @Tags         productions
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/productions/report.pdf [get]
func (h *ProductionHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.ProductionReport()
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
