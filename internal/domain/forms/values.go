package forms

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Values registro candidato tipado: el resultado del Normalizer más los campos
// derivados que fija el Calculator. Un campo ausente y un campo con fallo de
// parseo se distinguen: el segundo queda marcado como inválido y bloquea el envío.
type Values struct {
	decs    map[string]decimal.Decimal
	ints    map[string]int64
	strs    map[string]string
	dates   map[string]time.Time
	derived map[string]decimal.Decimal
	bad     map[string]string // campo -> motivo del fallo de parseo
}

// NewValues crea un registro candidato vacío.
func NewValues() Values {
	return Values{
		decs:    make(map[string]decimal.Decimal),
		ints:    make(map[string]int64),
		strs:    make(map[string]string),
		dates:   make(map[string]time.Time),
		derived: make(map[string]decimal.Decimal),
		bad:     make(map[string]string),
	}
}

// SetDecimal fija un campo decimal ya tipado (entrada que no vino como texto).
func (v Values) SetDecimal(name string, d decimal.Decimal) Values {
	v.decs[name] = d
	return v
}

// SetInt fija un campo entero (cantidades, edades, referencias).
func (v Values) SetInt(name string, n int64) Values {
	v.ints[name] = n
	return v
}

// SetString fija un campo de texto ya recortado.
func (v Values) SetString(name, s string) Values {
	v.strs[name] = s
	return v
}

// SetDate fija un campo de fecha.
func (v Values) SetDate(name string, t time.Time) Values {
	v.dates[name] = t
	return v
}

// Decimal devuelve el valor decimal del campo y si está presente.
func (v Values) Decimal(name string) (decimal.Decimal, bool) {
	d, ok := v.decs[name]
	return d, ok
}

// Int devuelve el valor entero del campo y si está presente.
func (v Values) Int(name string) (int64, bool) {
	n, ok := v.ints[name]
	return n, ok
}

// String devuelve el valor de texto del campo y si está presente.
func (v Values) String(name string) (string, bool) {
	s, ok := v.strs[name]
	return s, ok
}

// Date devuelve el valor de fecha del campo y si está presente.
func (v Values) Date(name string) (time.Time, bool) {
	t, ok := v.dates[name]
	return t, ok
}

// Derived devuelve un campo derivado. ok=false significa "sin calcular": algún
// insumo falta o es inválido, nunca un valor viejo retenido.
func (v Values) Derived(name string) (decimal.Decimal, bool) {
	d, ok := v.derived[name]
	return d, ok
}

// Invalid indica si el campo falló el parseo; Reason da el motivo.
func (v Values) Invalid(name string) bool {
	_, ok := v.bad[name]
	return ok
}

// Reason devuelve el motivo del fallo de parseo del campo, si lo hubo.
func (v Values) Reason(name string) string {
	return v.bad[name]
}

// ParseError fallo de parseo a nivel de campo: la entrada cruda no corresponde
// al tipo esperado. Se reporta por campo y bloquea el envío; nunca se sustituye
// por cero en silencio.
type ParseError struct {
	Field  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FormatDecimal serializa un decimal de forma que Normalize lo vuelva a leer
// idéntico (propiedad parse(format(x)) == x).
func FormatDecimal(d decimal.Decimal) string {
	return d.String()
}

// DisplayDecimal formatea a 2 decimales para presentación (pesos, totales).
func DisplayDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}
