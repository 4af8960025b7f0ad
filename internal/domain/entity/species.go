package entity

// Species especie animal que puede manejarse en la granja (pollos, cerdos, etc.).
type Species struct {
	ID   int64
	Name string
}

// State estado lógico de un lote. El borrado de lotes es un cambio de estado, nunca un DELETE físico.
type State struct {
	ID   int64
	Name string
}

// Estados sembrados por la migración inicial.
const (
	StateActive   int64 = 1 // Activo
	StateInactive int64 = 2 // Inactivo
)
