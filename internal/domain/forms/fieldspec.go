// Package forms implementa el motor de captura de los formularios de la granja:
// normalización de entrada cruda, cálculo de campos derivados y la compuerta de
// validación que decide si un registro puede persistirse.
//
// Cada tipo de registro (lote, producción, gasto, especie, insumo, novedad) se
// describe con una tabla declarativa de campos (FormSpec); el mismo motor corre
// para todos, en lugar de duplicar la lógica por formulario.
package forms

import (
	"github.com/shopspring/decimal"
)

// FieldKind tipo de dato que acepta un campo del formulario.
type FieldKind int

const (
	KindDecimal   FieldKind = iota // decimal con punto, invariante de locale
	KindInteger                    // entero; se rechaza entrada con fracción
	KindText                       // texto libre, se recorta
	KindName                       // texto con allow-list de caracteres (letras, dígitos, espacios)
	KindReference                  // id de una entidad externa; 0 o vacío nunca resuelve
	KindDate                       // fecha YYYY-MM-DD
)

// RangeClass restricción de rango para campos numéricos.
type RangeClass int

const (
	RangeNone        RangeClass = iota
	RangePositive               // estrictamente > 0 (enteros: >= 1)
	RangeNonNegative            // >= 0 (pesos, edades)
)

// FieldSpec descripción declarativa de un campo de entrada.
// Name es el nombre de alambre del contrato REST (ej. "Unit_Cost").
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	Range    RangeClass
	RefSet   string // solo KindReference: nombre del conjunto de opciones
	MaxLen   int    // solo texto; 0 = sin límite
}

// DerivedSpec campo derivado: se recalcula siempre desde los campos de entrada,
// nunca lo asigna el usuario. Compute devuelve ok=false cuando algún insumo
// requerido falta o es inválido; en ese caso el derivado queda explícitamente
// vacío (no conserva un valor viejo).
type DerivedSpec struct {
	Name     string
	Monetary bool // true: redondeo a 2 decimales, mitad lejos de cero
	Compute  func(v Values, refs OptionSets) (decimal.Decimal, bool)
}

// FormSpec tabla completa de un tipo de registro. El orden de Fields fija el
// orden determinista en que el Gate reporta violaciones dentro de cada regla.
type FormSpec struct {
	Kind    string
	Fields  []FieldSpec
	Derived []DerivedSpec
}

// Field busca la spec de un campo por nombre.
func (s FormSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Option elemento de un conjunto de referencia ya cargado ({id, name, ...}).
// Headcount solo aplica al conjunto de lotes: cabezas del lote, requerido por
// el cálculo de producción.
type Option struct {
	ID        int64
	Name      string
	Headcount int64
}

// OptionSets conjuntos de opciones vigentes, indexados por nombre de conjunto.
// Cada conjunto conserva el orden en que lo entregó el proveedor de referencia.
type OptionSets map[string][]Option

// Resolve busca una opción por id dentro de un conjunto. Un id <= 0 es el
// centinela "sin seleccionar" y nunca resuelve.
func (os OptionSets) Resolve(set string, id int64) (Option, bool) {
	if id <= 0 {
		return Option{}, false
	}
	for _, o := range os[set] {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Nombres de los conjuntos de referencia que cargan los formularios.
const (
	SetSpecies           = "species"
	SetStates            = "states"
	SetBatches           = "batches"
	SetSupplies          = "supplies"
	SetSupplyCategories  = "supplies_categories"
	SetNoveltyCategories = "novelty_categories"
)
