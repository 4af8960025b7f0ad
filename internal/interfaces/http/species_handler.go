package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// SpeciesHandler maneja las peticiones HTTP para especies (protegido).
type SpeciesHandler struct {
	uc *usecase.SpeciesUseCase
}

// NewSpeciesHandler construye el handler.
func NewSpeciesHandler(uc *usecase.SpeciesUseCase) *SpeciesHandler {
	return &SpeciesHandler{uc: uc}
}

// Create godoc
// @Summary      Crear especie
// @Tags         species
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSpeciesRequest  true  "Datos de la especie"
// @Success      201   {object}  dto.SpeciesDataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/species [post]
func (h *SpeciesHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveSpeciesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SpeciesDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener especie por ID
// @Tags         species
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la especie"
// @Success      200  {object}  dto.SpeciesDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/species/{id} [get]
func (h *SpeciesHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "especie no encontrada"})
	}
	return c.JSON(dto.SpeciesDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar especies
// @Tags         species
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SpeciesListResponse
// @Router       /api/species [get]
func (h *SpeciesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar especie
// @Tags         species
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la especie"
// @Param        body  body  dto.SaveSpeciesRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SpeciesDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/species/{id} [put]
func (h *SpeciesHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveSpeciesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "especie no encontrada"})
	}
	return c.JSON(dto.SpeciesDataResponse{Data: *out})
}

// Delete godoc
// @Summary      Eliminar especie
// @Tags         species
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la especie"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/species/{id} [delete]
func (h *SpeciesHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "especie eliminada"})
}

// StateHandler maneja la lectura del catálogo de estados (protegido).
type StateHandler struct {
	uc *usecase.StateUseCase
}

// NewStateHandler construye el handler.
func NewStateHandler(uc *usecase.StateUseCase) *StateHandler {
	return &StateHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados de lote
// @Tags         states
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateListResponse
// @Router       /api/states [get]
func (h *StateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
