package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// NoveltyHandler maneja las peticiones HTTP para novedades (protegido).
type NoveltyHandler struct {
	uc *usecase.NoveltyUseCase
}

// NewNoveltyHandler construye el handler.
func NewNoveltyHandler(uc *usecase.NoveltyUseCase) *NoveltyHandler {
	return &NoveltyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear novedad
// @Tags         novelties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveNoveltyRequest  true  "Datos de la novedad"
// @Success      201   {object}  dto.NoveltyDataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/novelties [post]
func (h *NoveltyHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NoveltyDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener novedad por ID
// @Tags         novelties
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la novedad"
// @Success      200  {object}  dto.NoveltyDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/novelties/{id} [get]
func (h *NoveltyHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "novedad no encontrada"})
	}
	return c.JSON(dto.NoveltyDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar novedades
// @Tags         novelties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NoveltyListResponse
// @Router       /api/novelties [get]
func (h *NoveltyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías de novedades
// @Tags         novelties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NoveltyCategoryListResponse
// @Router       /api/novelty-categories [get]
func (h *NoveltyHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar novedad
// @Tags         novelties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la novedad"
// @Param        body  body  dto.SaveNoveltyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.NoveltyDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/novelties/{id} [put]
func (h *NoveltyHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "novedad no encontrada"})
	}
	return c.JSON(dto.NoveltyDataResponse{Data: *out})
}

// Delete godoc
// @Summary      Eliminar novedad
// @Tags         novelties
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la novedad"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/novelties/{id} [delete]
func (h *NoveltyHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "novedad eliminada"})
}
