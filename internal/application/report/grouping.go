package report

import "github.com/jhoicas/visitas-api/internal/domain/entity"

// Secciones con cuadrícula de evidencia fotográfica en el informe.
// El resto de secciones solo lleva la tabla de actividades.
var photoSections = map[string]bool{
	"Aseo y Limpieza":   true,
	"Seguridad y Salud": true,
}

// SectionHasPhotos reporta si la sección lleva cuadrícula de fotos.
func SectionHasPhotos(nombre string) bool {
	return photoSections[nombre]
}

// GroupZonesBySection agrupa las zonas por etiqueta de sección preservando el
// orden de primera aparición; las zonas de una misma sección quedan contiguas
// en su orden relativo original.
func GroupZonesBySection(zonas []*entity.Zone) []Section {
	index := map[string]int{}
	var out []Section
	for _, z := range zonas {
		i, ok := index[z.Seccion]
		if !ok {
			i = len(out)
			index[z.Seccion] = i
			out = append(out, Section{Nombre: z.Seccion})
		}
		out[i].Zonas = append(out[i].Zonas, z)
	}
	return out
}

// HasAnyPhoto reporta si al menos una zona tiene referencia de foto no vacía
// (precondición dura para generar el informe).
func HasAnyPhoto(zonas []*entity.Zone) bool {
	for _, z := range zonas {
		if z.FotoURL != "" {
			return true
		}
	}
	return false
}
