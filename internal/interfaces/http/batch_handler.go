package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// BatchHandler maneja las peticiones HTTP para lotes (protegido).
// DELETE es un borrado lógico: el lote pasa a Inactivo y desaparece de los
// listados de lotes disponibles, pero su historial queda.
type BatchHandler struct {
	uc *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchDataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/batch [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BatchDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.BatchDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batch/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(dto.BatchDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar lotes
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batch [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lote"
// @Param        body  body  dto.SaveBatchRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.BatchDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/batch/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(dto.BatchDataResponse{Data: *out})
}

// Delete godoc
// @Summary      Desactivar lote (borrado lógico)
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batch/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote desactivado"})
}
