package entity

// SupplyCategory categoría del catálogo de insumos (alimento, medicamento, etc.).
type SupplyCategory struct {
	ID   int64
	Name string
}

// Supply insumo del catálogo, siempre asociado a una categoría.
type Supply struct {
	ID         int64
	Name       string
	CategoryID int64
}
