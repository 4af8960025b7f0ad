package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Normalize convierte la entrada cruda de los controles del formulario
// (nombre de campo -> texto) en un registro candidato tipado.
//
// Un valor que no parsea al tipo esperado es un ParseError de ese campo, no un
// cero silencioso. Un valor vacío cuenta como ausente: es el Gate quien decide
// si la ausencia viola la obligatoriedad.
func Normalize(spec FormSpec, raw map[string]string) (Values, []ParseError) {
	v := NewValues()
	var errs []ParseError

	for _, f := range spec.Fields {
		in, present := raw[f.Name]
		if !present {
			continue
		}
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		switch f.Kind {
		case KindDecimal:
			d, err := decimal.NewFromString(in)
			if err != nil {
				errs = markBad(v, errs, f.Name, "no es un número válido")
				continue
			}
			v.decs[f.Name] = d

		case KindInteger:
			n, err := strconv.ParseInt(in, 10, 64)
			if err != nil {
				reason := "no es un entero válido"
				if strings.ContainsAny(in, ".,") {
					reason = "no admite fracción"
				}
				errs = markBad(v, errs, f.Name, reason)
				continue
			}
			v.ints[f.Name] = n

		case KindReference:
			n, err := strconv.ParseInt(in, 10, 64)
			if err != nil {
				errs = markBad(v, errs, f.Name, "referencia inválida")
				continue
			}
			v.ints[f.Name] = n

		case KindText:
			v.strs[f.Name] = in

		case KindName:
			// NFC primero: una letra acentuada compuesta debe validar igual que la precompuesta.
			v.strs[f.Name] = norm.NFC.String(in)

		case KindDate:
			t, err := time.Parse("2006-01-02", in)
			if err != nil {
				errs = markBad(v, errs, f.Name, "fecha inválida, se espera YYYY-MM-DD")
				continue
			}
			v.dates[f.Name] = t
		}
	}

	return v, errs
}

func markBad(v Values, errs []ParseError, field, reason string) []ParseError {
	v.bad[field] = reason
	return append(errs, ParseError{Field: field, Reason: reason})
}
