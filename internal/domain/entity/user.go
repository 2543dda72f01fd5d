package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema (supervisor o técnico de campo).
type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
