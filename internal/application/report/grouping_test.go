package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visitas-api/internal/domain/entity"
)

func zona(seccion, concepto, foto string) *entity.Zone {
	return &entity.Zone{
		Seccion:           seccion,
		ConceptoActividad: concepto,
		Calificacion:      entity.ZoneRatingBueno,
		FotoURL:           foto,
	}
}

func TestGroupZonesBySection_OrdenDePrimeraAparicion(t *testing.T) {
	zonas := []*entity.Zone{
		zona("Aseo y Limpieza", "Baños", ""),
		zona("Seguridad y Salud", "Extintores", ""),
		zona("Aseo y Limpieza", "Pasillos", ""),
		zona("Colaborador", "Uniforme", ""),
		zona("Seguridad y Salud", "Botiquín", ""),
	}

	secciones := GroupZonesBySection(zonas)
	require.Len(t, secciones, 3)

	// Las etiquetas salen en el orden en que aparecieron por primera vez.
	assert.Equal(t, "Aseo y Limpieza", secciones[0].Nombre)
	assert.Equal(t, "Seguridad y Salud", secciones[1].Nombre)
	assert.Equal(t, "Colaborador", secciones[2].Nombre)

	// Las zonas de una sección quedan contiguas en su orden relativo.
	require.Len(t, secciones[0].Zonas, 2)
	assert.Equal(t, "Baños", secciones[0].Zonas[0].ConceptoActividad)
	assert.Equal(t, "Pasillos", secciones[0].Zonas[1].ConceptoActividad)

	require.Len(t, secciones[1].Zonas, 2)
	assert.Equal(t, "Extintores", secciones[1].Zonas[0].ConceptoActividad)
	assert.Equal(t, "Botiquín", secciones[1].Zonas[1].ConceptoActividad)
}

func TestGroupZonesBySection_SinZonas(t *testing.T) {
	assert.Empty(t, GroupZonesBySection(nil))
}

func TestSectionHasPhotos(t *testing.T) {
	assert.True(t, SectionHasPhotos("Aseo y Limpieza"))
	assert.True(t, SectionHasPhotos("Seguridad y Salud"))
	assert.False(t, SectionHasPhotos("Colaborador"))
	assert.False(t, SectionHasPhotos("Productividad"))
}

func TestHasAnyPhoto(t *testing.T) {
	sinFotos := []*entity.Zone{
		zona("Aseo y Limpieza", "Baños", ""),
		zona("Colaborador", "Uniforme", ""),
	}
	assert.False(t, HasAnyPhoto(sinFotos))

	conFoto := append(sinFotos, zona("Seguridad y Salud", "Extintores", "/uploads/ext.jpg"))
	assert.True(t, HasAnyPhoto(conFoto))

	assert.False(t, HasAnyPhoto(nil))
}
