package entity

import "time"

// Visit es el registro central: una visita técnica realizada a un cliente.
// El ID es un compuesto legible `{n}-{tipoCodigo}-{YYYYMMDD}` asignado al
// crear y nunca mutado.
type Visit struct {
	ID               string
	Fecha            time.Time
	SupervisorID     string
	TecnicoID        string // opcional: vacío si la visita no llevó técnico
	ClienteID        string
	Goal             int
	Calificacion     int
	Notas            string
	SeguridadObs     string
	ProductividadObs string
	ConclusionesObs  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Calificaciones válidas para una zona.
const (
	ZoneRatingBueno   = "Bueno"
	ZoneRatingRegular = "Regular"
	ZoneRatingMalo    = "Malo"
)

// ValidZoneRating reporta si s es una calificación de zona admitida.
func ValidZoneRating(s string) bool {
	return s == ZoneRatingBueno || s == ZoneRatingRegular || s == ZoneRatingMalo
}

// Zone es una unidad de observación dentro de una visita, agrupada por
// sección (ej. "Aseo y Limpieza", "Seguridad y Salud", "Colaborador").
type Zone struct {
	ID                string
	VisitaID          string
	Seccion           string
	ConceptoActividad string
	Calificacion      string // Bueno, Regular, Malo
	Observaciones     string
	FotoURL           string // URL relativa a la evidencia, opcional
}
