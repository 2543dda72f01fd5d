package entity

import "time"

// Client representa la organización externa que recibe las visitas técnicas.
// TipoCodigo es el código corto (ej. "AL") que participa en el ID de visita.
type Client struct {
	ID            string
	NIT           string // único
	Nombre        string
	Administrador string
	Correo        string
	TipoCodigo    string
	LogoURL       string // opcional, se incluye en el encabezado del informe
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
