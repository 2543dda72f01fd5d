package dto

// ZoneInput entrada de una zona dentro de la creación/actualización de visita.
type ZoneInput struct {
	Seccion           string `json:"seccion" validate:"required,max=100"`
	ConceptoActividad string `json:"concepto_actividad" validate:"required"`
	Calificacion      string `json:"calificacion" validate:"required,oneof=Bueno Regular Malo"`
	Observaciones     string `json:"observaciones"`
	FotoURL           string `json:"foto_url" validate:"omitempty,max=200"`
}

// SaveVisitRequest entrada para crear o actualizar una visita con sus zonas.
// TipoCodigo solo participa en la creación (forma parte del ID generado).
type SaveVisitRequest struct {
	Fecha            string      `json:"fecha" validate:"required"` // YYYY-MM-DD
	SupervisorID     string      `json:"supervisor_id" validate:"required,uuid"`
	TecnicoID        string      `json:"tecnico_id" validate:"omitempty,uuid"`
	ClienteID        string      `json:"cliente_id" validate:"required,uuid"`
	TipoCodigo       string      `json:"tipo_codigo" validate:"omitempty,max=10"`
	Goal             int         `json:"goal"`
	Calificacion     int         `json:"calificacion"`
	Notas            string      `json:"notas"`
	SeguridadObs     string      `json:"seguridad_obs"`
	ProductividadObs string      `json:"productividad_obs"`
	ConclusionesObs  string      `json:"conclusiones_obs"`
	Zonas            []ZoneInput `json:"zonas"`
}

// VisitSummaryResponse fila de listado de visitas (nombres ya resueltos).
type VisitSummaryResponse struct {
	ID           string `json:"id"`
	Fecha        string `json:"fecha"` // YYYY-MM-DD
	Supervisor   string `json:"supervisor"`
	Tecnico      string `json:"tecnico,omitempty"`
	Cliente      string `json:"cliente"`
	Goal         int    `json:"goal"`
	Calificacion int    `json:"calificacion"`
}

// VisitResponse detalle completo de una visita con sus zonas.
type VisitResponse struct {
	ID               string         `json:"id"`
	Fecha            string         `json:"fecha"`
	SupervisorID     string         `json:"supervisor_id"`
	Supervisor       string         `json:"supervisor"`
	TecnicoID        string         `json:"tecnico_id,omitempty"`
	Tecnico          string         `json:"tecnico,omitempty"`
	ClienteID        string         `json:"cliente_id"`
	Cliente          string         `json:"cliente"`
	Goal             int            `json:"goal"`
	Calificacion     int            `json:"calificacion"`
	Notas            string         `json:"notas,omitempty"`
	SeguridadObs     string         `json:"seguridad_obs,omitempty"`
	ProductividadObs string         `json:"productividad_obs,omitempty"`
	ConclusionesObs  string         `json:"conclusiones_obs,omitempty"`
	Zonas            []ZoneResponse `json:"zonas"`
}

// CreateVisitResponse confirma la creación con el ID asignado.
type CreateVisitResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// CreateZoneRequest entrada para crear una zona suelta sobre una visita existente.
type CreateZoneRequest struct {
	VisitaID string `json:"visita_id" validate:"required"`
	ZoneInput
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID                string `json:"id"`
	VisitaID          string `json:"visita_id"`
	Seccion           string `json:"seccion"`
	ConceptoActividad string `json:"concepto_actividad"`
	Calificacion      string `json:"calificacion"`
	Observaciones     string `json:"observaciones"`
	FotoURL           string `json:"foto_url,omitempty"`
}

// GenerateReportRequest cuerpo opcional de POST /generar-pdf/:visitaId.
type GenerateReportRequest struct {
	EnviarEmail bool `json:"enviar_email"`
}

// UploadResponse salida de POST /upload.
type UploadResponse struct {
	URL string `json:"url"`
}
