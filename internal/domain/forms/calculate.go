package forms

// Calculate recalcula los campos derivados del registro candidato.
//
// Es una función pura de los campos de entrada (y del snapshot de referencia):
// mismos insumos, mismo resultado; recalcular sobre un candidato sin cambios no
// mueve nada. Si algún insumo de un derivado falta o es inválido, el derivado
// queda explícitamente vacío en lugar de conservar un valor viejo.
//
// Los derivados monetarios se redondean a 2 decimales con mitad-lejos-de-cero
// (decimal.Round); los no monetarios conservan su precisión natural y se
// formatean a 2 decimales solo al presentar.
func Calculate(spec FormSpec, v Values, refs OptionSets) Values {
	for _, d := range spec.Derived {
		out, ok := d.Compute(v, refs)
		if !ok {
			delete(v.derived, d.Name)
			continue
		}
		if d.Monetary {
			out = out.Round(2)
		}
		v.derived[d.Name] = out
	}
	return v
}
