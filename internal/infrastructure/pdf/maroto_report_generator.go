// Package pdf implementa la generación del informe de visita técnica.
//
// Layout de la página carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: logo empresa │ logo cliente                         │
//	│  INFORME PRESTACIÓN DEL SERVICIO                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente/NIT | Administrador/Correo | Código/Fecha    │
//	│         Supervisor/ID Visita                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  por sección (orden de primera aparición):                   │
//	│    SECCIÓN: {NOMBRE}                                         │
//	│    cuadrícula 2 col: concepto / calificación / observaciones │
//	│    EVIDENCIA FOTOGRÁFICA (solo Aseo y Seguridad)             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONCLUSIONES (si hay texto)                                 │
//	│  FOOTER: empresa | dirección | tel | email | fecha           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/visitas-api/internal/application/report"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/infrastructure/storage"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 0, Blue: 139}      // azul oscuro
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}

	// Colores de encabezado por sección, como el informe original.
	sectionColors = map[string]*props.Color{
		"Aseo y Limpieza":   {Red: 0, Green: 100, Blue: 0},    // verde oscuro
		"Seguridad y Salud": {Red: 139, Green: 0, Blue: 0},    // rojo oscuro
		"Colaborador":       {Red: 255, Green: 140, Blue: 0},  // naranja oscuro
	}
)

// Texto de relleno cuando una zona no trae observaciones.
const sinObservaciones = "Sin observaciones"

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
// Las imágenes (logos, evidencia) se resuelven vía report.ImageSource; una
// imagen ilegible degrada a placeholder o nota inline, nunca aborta el informe.
type MarotoReportGenerator struct {
	images report.ImageSource
}

// NewMarotoReportGenerator construye el generador con su fuente de imágenes.
func NewMarotoReportGenerator(images report.ImageSource) *MarotoReportGenerator {
	return &MarotoReportGenerator{images: images}
}

// GenerateVisitReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateVisitReport(_ context.Context, data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Informe Prestación del Servicio", true).
		WithAuthor(data.Empresa.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.logoRow(data))
	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, r := range metadataRows(data) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, sec := range data.Secciones {
		m.AddRows(sectionHeaderRow(sec.Nombre))
		for _, r := range activityGridRows(sec.Zonas) {
			m.AddRows(r)
		}
		if report.SectionHasPhotos(sec.Nombre) {
			for _, r := range g.photoGridRows(sec.Zonas) {
				m.AddRows(r)
			}
		}
	}

	if data.Visit.ConclusionesObs != "" {
		for _, r := range conclusionsRows(data.Visit) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(data.Empresa))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// logoRow: logo de la empresa (o círculo de relleno) y logo del cliente si carga.
func (g *MarotoReportGenerator) logoRow(data *report.Data) core.Row {
	empresa := g.images.TryLoad(data.Empresa.LogoRef)
	if empresa == nil {
		empresa = &report.Image{
			Bytes: storage.PlaceholderLogo(data.Empresa.Nombre),
			Ext:   "png",
		}
	}
	cols := []core.Col{
		col.New(3).Add(image.NewFromBytes(empresa.Bytes, extensionOf(empresa.Ext), props.Rect{
			Percent: 90, Center: true,
		})),
	}
	// El logo del cliente solo se incluye si el archivo carga; si falla se omite.
	if cliente := g.images.TryLoad(data.ClienteLogoRef); cliente != nil {
		cols = append(cols,
			col.New(6),
			col.New(3).Add(image.NewFromBytes(cliente.Bytes, extensionOf(cliente.Ext), props.Rect{
				Percent: 90, Center: true,
			})),
		)
	} else {
		cols = append(cols, col.New(9))
	}
	return row.New(24).Add(cols...)
}

// titleRow: título principal centrado.
func titleRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("INFORME PRESTACIÓN DEL SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// metadataRows: tabla clave-valor con los datos iniciales de la visita.
func metadataRows(data *report.Data) []core.Row {
	pair := func(label1, value1, label2, value2 string) core.Row {
		return row.New(8).Add(
			col.New(2).Add(text.New(label1, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
			col.New(4).Add(text.New(value1, props.Text{Size: 9, Top: 2})),
			col.New(2).Add(text.New(label2, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
			col.New(4).Add(text.New(value2, props.Text{Size: 9, Top: 2})),
		)
	}
	c := data.Cliente
	return []core.Row{
		pair("Cliente", c.Nombre, "NIT", c.NIT),
		pair("Administrador", c.Administrador, "Correo", c.Correo),
		pair("Código", c.TipoCodigo, "Fecha Visita Técnica", data.Visit.Fecha.Format("02/01/2006")),
		pair("Supervisor", data.Supervisor, "ID Visita Técnica", data.Visit.ID),
	}
}

// sectionHeaderRow: encabezado "SECCIÓN: {NOMBRE}" con el color de la sección.
func sectionHeaderRow(nombre string) core.Row {
	color, ok := sectionColors[nombre]
	if !ok {
		color = colorPrimary
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SECCIÓN: "+strings.ToUpper(nombre), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: color, Top: 4,
			}),
		),
	)
}

// activityGridRows: cuadrícula de dos columnas con las actividades de la sección.
func activityGridRows(zonas []*entity.Zone) []core.Row {
	cell := func(z *entity.Zone) core.Col {
		return col.New(6).Add(
			text.New("Concepto Actividad: "+z.ConceptoActividad, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1, Right: 1,
			}),
			text.New("Calificación: "+z.Calificacion, props.Text{
				Size: 9, Top: 7, Left: 1, Right: 1,
			}),
			text.New("Observaciones: "+obsOrDefault(z.Observaciones), props.Text{
				Size: 9, Top: 12, Left: 1, Right: 1, Color: colorGray,
			}),
		)
	}
	var rows []core.Row
	for i := 0; i < len(zonas); i += 2 {
		cols := []core.Col{cell(zonas[i])}
		if i+1 < len(zonas) {
			cols = append(cols, cell(zonas[i+1]))
		} else {
			cols = append(cols, col.New(6))
		}
		rows = append(rows, row.New(20).Add(cols...))
	}
	return rows
}

// photoGridRows: cuadrícula de evidencia fotográfica en dos columnas. Una foto
// que no carga se sustituye por una nota inline, nunca falla el informe.
func (g *MarotoReportGenerator) photoGridRows(zonas []*entity.Zone) []core.Row {
	var cells []core.Col
	for _, z := range zonas {
		if z.FotoURL == "" {
			continue
		}
		if img := g.images.TryLoad(z.FotoURL); img != nil {
			cells = append(cells, col.New(6).Add(
				image.NewFromBytes(img.Bytes, extensionOf(img.Ext), props.Rect{
					Percent: 85, Center: true,
				}),
			))
		} else {
			cells = append(cells, col.New(6).Add(
				text.New("Error cargando imagen: "+path.Base(z.FotoURL), props.Text{
					Size: 9, Top: 2, Color: colorGray,
				}),
			))
		}
	}
	if len(cells) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("EVIDENCIA FOTOGRÁFICA:", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
		)),
	}
	for i := 0; i < len(cells); i += 2 {
		cols := []core.Col{cells[i]}
		if i+1 < len(cells) {
			cols = append(cols, cells[i+1])
		} else {
			cols = append(cols, col.New(6))
		}
		rows = append(rows, row.New(50).Add(cols...))
	}
	return rows
}

// conclusionsRows: bloque de conclusiones con título resaltado.
func conclusionsRows(visit *entity.Visit) []core.Row {
	return []core.Row{
		row.New(10).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
			col.New(12).Add(
				text.New("CONCLUSIONES", props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Center,
					Color: colorWhite, Top: 2,
				}),
			),
		),
		row.New(18).Add(
			col.New(12).Add(
				text.New(visit.ConclusionesObs, props.Text{
					Size: 10, Top: 3, Left: 4, Right: 4,
				}),
			),
		),
	}
}

// footerRow: línea final con la marca de la empresa y la fecha de generación.
func footerRow(empresa report.Branding) core.Row {
	footer := fmt.Sprintf("%s | %s | Tel: %s | Email: %s | Fecha: %s",
		empresa.Nombre, empresa.Direccion, empresa.Telefono, empresa.Correo,
		time.Now().Format("02/01/2006"),
	)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(footer, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func obsOrDefault(obs string) string {
	if obs == "" {
		return sinObservaciones
	}
	return obs
}

func extensionOf(ext string) extension.Type {
	if ext == "jpg" || ext == "jpeg" {
		return extension.Jpg
	}
	return extension.Png
}
