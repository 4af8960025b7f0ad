package dto

import "github.com/agroapp/agroapp-api/internal/domain/forms"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con la lista ordenada de
// violaciones del Gate. El orden es determinista: el cliente puede mostrar la
// primera como error principal.
type ValidationErrorResponse struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Violations []forms.Violation `json:"violations"`
}

// MessageResponse respuesta simple con mensaje (borrados, operaciones sin cuerpo).
type MessageResponse struct {
	Message string `json:"message"`
}
