package dto

import "github.com/agroapp/agroapp-api/internal/domain/forms"

// OpenFormRequest abre una sesión de formulario para un tipo de registro.
// RecordID viene al editar un registro existente.
type OpenFormRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=batch production expense species supply novelty"`
	RecordID *int64 `json:"record_id"`
}

// FormValuesRequest valores crudos de los controles, tal como los teclea el usuario.
type FormValuesRequest struct {
	Values map[string]string `json:"values"`
}

// FormOptionResponse opción de un conjunto de referencia ya cargado.
type FormOptionResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Headcount int64  `json:"headcount,omitempty"`
}

// FormStateResponse estado observable de la sesión tras cada operación:
// estado de la máquina, derivados calculados (formateados a 2 decimales para
// mostrar) y la lista ordenada de violaciones si el Gate rechazó.
type FormStateResponse struct {
	SessionID  string                          `json:"session_id"`
	Kind       string                          `json:"kind"`
	State      string                          `json:"state"`
	Derived    map[string]string               `json:"derived"`
	Violations []forms.Violation               `json:"violations,omitempty"`
	Options    map[string][]FormOptionResponse `json:"options,omitempty"`
}

// FormSubmitResponse resultado de un envío aceptado y persistido.
type FormSubmitResponse struct {
	SessionID string      `json:"session_id"`
	State     string      `json:"state"`
	Record    interface{} `json:"record"`
}
