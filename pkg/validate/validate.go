package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instancia compartida: el validator cachea la metadata de structs, por eso se reúsa.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO de transporte según sus tags `validate`.
// Devuelve un error legible con la lista de campos inválidos.
// Las reglas de negocio no viven aquí: este validador solo cubre la forma del payload
// (email, longitudes, rangos de paginación); el Gate de formularios valida el dominio.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
