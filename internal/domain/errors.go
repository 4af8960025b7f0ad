package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrBatchInactive      = errors.New("el lote está inactivo")
	ErrImmutableRecord    = errors.New("el registro no admite modificación")
	ErrReferenceData      = errors.New("no se pudieron cargar los datos de referencia")
	ErrSubmitInFlight     = errors.New("ya hay un envío en curso")
)

// ValidationError agrupa la lista ordenada de violaciones del Gate de formularios.
// Nunca llega a la capa de persistencia: el caso de uso corta antes de tocar el repositorio.
type ValidationError struct {
	Violations []forms.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Code))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// AsValidation devuelve la ValidationError envuelta en err, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
