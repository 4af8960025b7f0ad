package forms

import (
	"fmt"
	"unicode"
)

// Códigos máquina de las violaciones del Gate.
const (
	CodeUnknownReference  = "UNKNOWN_REFERENCE"
	CodeRequired          = "REQUIRED"
	CodeInvalidNumber     = "INVALID_NUMBER"
	CodeInvalidDate       = "INVALID_DATE"
	CodeOutOfRange        = "OUT_OF_RANGE"
	CodeInvalidCharacters = "INVALID_CHARACTERS"
)

// Violation violación de una regla de negocio sobre un campo concreto.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate aplica la compuerta de validación sobre el candidato ya normalizado
// y con derivados calculados. Devuelve la lista ordenada de violaciones; vacía
// significa Aceptado.
//
// Las reglas corren en orden fijo para que el orden de los errores sea
// determinista:
//  1. Toda referencia requerida resuelve contra su conjunto de opciones cargado.
//  2. Todo numérico (y fecha) requerido está presente y parseó bien.
//  3. Rangos: los campos de cantidad son > 0; pesos y edades son >= 0.
//  4. Textos requeridos no vacíos tras recorte; los nombres pasan la allow-list.
//
// Validate no hace I/O: si hay violaciones, nada llega a la capa de persistencia
// y el candidato vuelve al llamador sin modificar.
func Validate(spec FormSpec, v Values, refs OptionSets) []Violation {
	var out []Violation

	// Regla 1: referencias
	for _, f := range spec.Fields {
		if f.Kind != KindReference {
			continue
		}
		id, present := v.Int(f.Name)
		switch {
		case v.Invalid(f.Name):
			out = append(out, Violation{f.Name, CodeUnknownReference, "la referencia no es un id válido"})
		case !present || id <= 0:
			if f.Required {
				out = append(out, Violation{f.Name, CodeUnknownReference, "debe seleccionar una opción"})
			}
		default:
			if _, ok := refs.Resolve(f.RefSet, id); !ok {
				out = append(out, Violation{f.Name, CodeUnknownReference,
					fmt.Sprintf("el id %d no existe en %s", id, f.RefSet)})
			}
		}
	}

	// Regla 2: numéricos y fechas presentes y parseados
	for _, f := range spec.Fields {
		switch f.Kind {
		case KindDecimal, KindInteger:
			if v.Invalid(f.Name) {
				out = append(out, Violation{f.Name, CodeInvalidNumber, v.Reason(f.Name)})
				continue
			}
			if f.Required && !hasNumeric(v, f) {
				out = append(out, Violation{f.Name, CodeRequired, "campo requerido"})
			}
		case KindDate:
			if v.Invalid(f.Name) {
				out = append(out, Violation{f.Name, CodeInvalidDate, v.Reason(f.Name)})
				continue
			}
			if f.Required {
				if _, ok := v.Date(f.Name); !ok {
					out = append(out, Violation{f.Name, CodeRequired, "campo requerido"})
				}
			}
		}
	}

	// Regla 3: rangos
	for _, f := range spec.Fields {
		if f.Range == RangeNone || v.Invalid(f.Name) {
			continue
		}
		switch f.Kind {
		case KindDecimal:
			d, ok := v.Decimal(f.Name)
			if !ok {
				continue
			}
			if f.Range == RangePositive && !d.IsPositive() {
				out = append(out, Violation{f.Name, CodeOutOfRange, "debe ser mayor que cero"})
			}
			if f.Range == RangeNonNegative && d.IsNegative() {
				out = append(out, Violation{f.Name, CodeOutOfRange, "no puede ser negativo"})
			}
		case KindInteger:
			n, ok := v.Int(f.Name)
			if !ok {
				continue
			}
			if f.Range == RangePositive && n < 1 {
				out = append(out, Violation{f.Name, CodeOutOfRange, "debe ser al menos 1"})
			}
			if f.Range == RangeNonNegative && n < 0 {
				out = append(out, Violation{f.Name, CodeOutOfRange, "no puede ser negativo"})
			}
		}
	}

	// Regla 4: textos
	for _, f := range spec.Fields {
		if f.Kind != KindText && f.Kind != KindName {
			continue
		}
		s, present := v.String(f.Name)
		if !present || s == "" {
			if f.Required {
				out = append(out, Violation{f.Name, CodeRequired, "campo requerido"})
			}
			continue
		}
		if f.Kind == KindName && !validName(s) {
			// Se rechaza y reporta; nunca se recortan caracteres en silencio,
			// eso alteraría lo que el usuario quiso escribir.
			out = append(out, Violation{f.Name, CodeInvalidCharacters,
				"solo se permiten letras, dígitos y espacios"})
			continue
		}
		if f.MaxLen > 0 && len([]rune(s)) > f.MaxLen {
			out = append(out, Violation{f.Name, CodeOutOfRange,
				fmt.Sprintf("máximo %d caracteres", f.MaxLen)})
		}
	}

	return out
}

// Process corre el flujo completo: Normalize -> Calculate -> Validate.
// Los fallos de parseo entran a la lista de violaciones en el orden de la regla
// que los cubre (referencias en la 1, numéricos en la 2).
func Process(spec FormSpec, raw map[string]string, refs OptionSets) (Values, []Violation) {
	v, _ := Normalize(spec, raw)
	v = Calculate(spec, v, refs)
	return v, Validate(spec, v, refs)
}

func hasNumeric(v Values, f FieldSpec) bool {
	if f.Kind == KindDecimal {
		_, ok := v.Decimal(f.Name)
		return ok
	}
	_, ok := v.Int(f.Name)
	return ok
}

// validName acepta solo letras (incluidas las acentuadas), dígitos y espacios.
func validName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
