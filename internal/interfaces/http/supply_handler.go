package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// SupplyHandler maneja las peticiones HTTP para insumos (protegido).
type SupplyHandler struct {
	uc *usecase.SupplyUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(uc *usecase.SupplyUseCase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSupplyRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.SupplyDataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/supplies [post]
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplyDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del insumo"
// @Success      200  {object}  dto.SupplyDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [get]
func (h *SupplyHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(dto.SupplyDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar insumos
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplyListResponse
// @Router       /api/supplies [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías de insumos
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplyCategoryListResponse
// @Router       /api/supplies/categories [get]
func (h *SupplyHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del insumo"
// @Param        body  body  dto.SaveSupplyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SupplyDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/supplies/{id} [put]
func (h *SupplyHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(dto.SupplyDataResponse{Data: *out})
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del insumo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [delete]
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "insumo eliminado"})
}
