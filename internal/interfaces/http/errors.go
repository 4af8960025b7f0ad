package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/domain"
)

// handleError mapea los errores de dominio a respuestas HTTP. Todos los
// handlers usan esta ruta para que un mismo error reciba siempre el mismo
// código y cuerpo.
func handleError(c *fiber.Ctx, err error) error {
	if verr, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    "el formulario tiene campos inválidos",
			Violations: verr.Violations,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrBatchInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BATCH_INACTIVE", Message: "el lote referenciado está inactivo"})
	case errors.Is(err, domain.ErrImmutableRecord):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMMUTABLE", Message: "el registro no admite modificación"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: "ya hay un envío en curso para esta sesión"})
	case errors.Is(err, domain.ErrReferenceData):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "REFERENCE_DATA", Message: "no se pudieron cargar los datos de referencia, reintente"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseID lee el parámetro :id como entero positivo; 0 si es inválido.
func parseID(c *fiber.Ctx) int64 {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return int64(id)
}
