package entity

import "time"

// NoveltyCategory categoría de novedad (mortalidad, enfermedad, etc.).
type NoveltyCategory struct {
	ID   int64
	Name string
}

// Novelty novedad: incidente registrado contra un lote.
type Novelty struct {
	ID          int64
	Quantity    int64
	Description string
	Date        time.Time
	BatchID     int64
	CategoryID  int64
}
