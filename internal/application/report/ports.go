package report

import (
	"context"

	"github.com/jhoicas/visitas-api/internal/domain/entity"
)

// Image contenido de una imagen ya validada, lista para incrustar.
type Image struct {
	Bytes []byte
	Ext   string // "png" o "jpg"
}

// ImageSource resuelve referencias de foto/logo a contenido de imagen.
// TryLoad devuelve nil cuando el archivo no existe o no es una imagen válida:
// el renderer decide el fallback (placeholder o nota inline), nunca falla
// el informe completo por una imagen.
type ImageSource interface {
	TryLoad(ref string) *Image
}

// Branding datos de la empresa que encabezan y cierran el informe. Cuando el
// supervisor (ni el técnico) tiene empresa, los campos llevan los textos
// de relleno ("Empresa", "N/A"), nunca vacío.
type Branding struct {
	Nombre    string
	Telefono  string
	Direccion string
	Correo    string
	LogoRef   string // URL relativa del logo, vacío = sin logo registrado
}

// Section zonas agrupadas bajo una misma etiqueta de sección, en el orden en
// que la etiqueta apareció por primera vez.
type Section struct {
	Nombre string
	Zonas  []*entity.Zone
}

// Data todo lo que necesita el generador para producir el documento.
type Data struct {
	Visit          *entity.Visit
	Cliente        *entity.Client
	Supervisor     string // nombre a mostrar
	Empresa        Branding
	ClienteLogoRef string
	Secciones      []Section
}

// PDFGenerator produce el documento paginado del informe.
type PDFGenerator interface {
	GenerateVisitReport(ctx context.Context, data *Data) ([]byte, error)
}

// Mailer despacha el informe terminado como adjunto.
type Mailer interface {
	SendReport(ctx context.Context, to, subject, body, filename string, pdf []byte) error
}
