package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/formflow"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/pkg/validate"
)

// FormSessionHandler expone las sesiones de formulario del servidor: el modal
// del cliente abre una sesión, empuja valores para recalcular derivados y
// envía una sola vez.
type FormSessionHandler struct {
	registry  *formflow.Registry
	persister formflow.Persister
}

// NewFormSessionHandler construye el handler.
func NewFormSessionHandler(registry *formflow.Registry, persister formflow.Persister) *FormSessionHandler {
	return &FormSessionHandler{registry: registry, persister: persister}
}

// Open godoc
// @Summary      Abrir sesión de formulario
// @Tags         form-sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenFormRequest  true  "Tipo de registro y, para editar, el ID"
// @Success      201   {object}  dto.FormStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/form-sessions [post]
func (h *FormSessionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	s, err := h.registry.Open(c.Context(), in.Kind, in.RecordID)
	if err != nil && !errors.Is(err, domain.ErrReferenceData) {
		return handleError(c, err)
	}
	// Con referencias caídas la sesión igual se crea, en reference_error:
	// el cliente muestra el aviso y reintenta con /reload.
	return c.Status(fiber.StatusCreated).JSON(stateResponse(s, true))
}

// Get godoc
// @Summary      Consultar estado de la sesión
// @Tags         form-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.FormStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/form-sessions/{id} [get]
func (h *FormSessionHandler) Get(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stateResponse(s, true))
}

// SetValues godoc
// @Summary      Actualizar valores y recalcular derivados
// @Tags         form-sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.FormValuesRequest  true  "Valores crudos de los controles"
// @Success      200   {object}  dto.FormStateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/form-sessions/{id}/values [put]
func (h *FormSessionHandler) SetValues(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	var in dto.FormValuesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	derived, err := s.SetValues(in.Values)
	if err != nil {
		return handleError(c, err)
	}
	resp := stateResponse(s, false)
	resp.Derived = derived
	return c.JSON(resp)
}

// Submit godoc
// @Summary      Enviar el formulario (vuelo único)
// @Tags         form-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      201  {object}  dto.FormSubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/form-sessions/{id}/submit [post]
func (h *FormSessionHandler) Submit(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	rec, violations, err := s.Submit(h.persister)
	if err != nil {
		return handleError(c, err)
	}
	if len(violations) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    "el formulario tiene campos inválidos",
			Violations: violations,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FormSubmitResponse{
		SessionID: s.ID(),
		State:     s.State(),
		Record:    rec,
	})
}

// Reload godoc
// @Summary      Reintentar la carga de referencias
// @Tags         form-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.FormStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/form-sessions/{id}/reload [post]
func (h *FormSessionHandler) Reload(c *fiber.Ctx) error {
	s, err := h.registry.Reload(c.Context(), c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrReferenceData) {
		return handleError(c, err)
	}
	return c.JSON(stateResponse(s, true))
}

// Close godoc
// @Summary      Cerrar la sesión (cancelar el modal)
// @Tags         form-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/form-sessions/{id} [delete]
func (h *FormSessionHandler) Close(c *fiber.Ctx) error {
	h.registry.Close(c.Params("id"))
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// stateResponse arma la vista observable de la sesión. withOptions incluye los
// conjuntos de opciones (al abrir y recargar; en ediciones sobra reenviarlos).
func stateResponse(s *formflow.Session, withOptions bool) dto.FormStateResponse {
	resp := dto.FormStateResponse{
		SessionID:  s.ID(),
		Kind:       s.Kind(),
		State:      s.State(),
		Derived:    s.Derived(),
		Violations: s.Violations(),
	}
	if withOptions {
		opts := s.Options()
		resp.Options = make(map[string][]dto.FormOptionResponse, len(opts))
		for name, list := range opts {
			out := make([]dto.FormOptionResponse, 0, len(list))
			for _, o := range list {
				out = append(out, dto.FormOptionResponse{ID: o.ID, Name: o.Name, Headcount: o.Headcount})
			}
			resp.Options[name] = out
		}
	}
	return resp
}
