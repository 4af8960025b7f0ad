package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
)

// User usuario del sistema. La identidad se valida siempre en el servidor
// (token firmado), nunca se confía en lo que el cliente guarde localmente.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
