package dto

import "time"

// SaveCompanyRequest entrada para crear o actualizar el perfil de empresa del usuario.
type SaveCompanyRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=100"`
	NIT       string `json:"nit" validate:"required,max=20"`
	Telefono  string `json:"telefono" validate:"required,max=20"`
	Correo    string `json:"correo" validate:"required,email"`
	Direccion string `json:"direccion" validate:"omitempty,max=200"`
	LogoURL   string `json:"logo_url" validate:"omitempty,max=200"`
}

// CompanyResponse salida del perfil de empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit"`
	Telefono  string    `json:"telefono"`
	Correo    string    `json:"correo"`
	Direccion string    `json:"direccion,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
