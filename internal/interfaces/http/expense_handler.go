package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
)

// ExpenseHandler maneja las peticiones HTTP para gastos (protegido).
// No hay DELETE: un gasto registrado se corrige editándolo, no borrándolo.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseDataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/production-expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExpenseDataResponse{Data: *out})
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del gasto"
// @Success      200  {object}  dto.ExpenseDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	}
	return c.JSON(dto.ExpenseDataResponse{Data: *out})
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/production-expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del gasto"
// @Param        body  body  dto.SaveExpenseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ExpenseDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/production-expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	}
	return c.JSON(dto.ExpenseDataResponse{Data: *out})
}
