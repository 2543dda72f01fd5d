package entity

import "time"

// Company representa el perfil de empresa de un usuario: aporta la marca
// (nombre, NIT, logo) que encabeza los informes de visita.
// Cada usuario tiene a lo sumo una empresa (user_id único).
type Company struct {
	ID        string
	UserID    string
	Nombre    string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Telefono  string
	Correo    string
	Direccion string // opcional
	LogoURL   string // URL relativa al logo subido, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
