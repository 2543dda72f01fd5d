package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: mensaje + rol (contrato original) y token JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Rol     string `json:"rol"`
	Nombre  string `json:"nombre"`
	Token   string `json:"token"`
}

// CreateUserRequest entrada para el registro público (password en texto, se
// hashea en use case). No lleva rol: todo registro entra como "user".
type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no cambiar.
type UpdateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterResponse salida del registro: el original iniciaba sesión automáticamente.
type RegisterResponse struct {
	Message string `json:"message"`
	Rol     string `json:"rol"`
	Nombre  string `json:"nombre"`
	Token   string `json:"token"`
}
