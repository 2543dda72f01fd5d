package dto

import "time"

// SaveClientRequest entrada para crear o actualizar un cliente.
type SaveClientRequest struct {
	NIT           string `json:"nit" validate:"required,max=20"`
	Nombre        string `json:"nombre" validate:"required,min=1,max=100"`
	Administrador string `json:"administrador" validate:"required,max=100"`
	Correo        string `json:"correo" validate:"required,email"`
	TipoCodigo    string `json:"tipo_codigo" validate:"required,max=10"`
	LogoURL       string `json:"logo_url" validate:"omitempty,max=200"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            string    `json:"id"`
	NIT           string    `json:"nit"`
	Nombre        string    `json:"nombre"`
	Administrador string    `json:"administrador"`
	Correo        string    `json:"correo"`
	TipoCodigo    string    `json:"tipo_codigo"`
	LogoURL       string    `json:"logo_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
