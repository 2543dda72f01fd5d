package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const placeholderSize = 120

// Paleta para el círculo de relleno; el tono se elige por hash del nombre
// para que cada empresa conserve siempre el mismo color.
var placeholderPalette = []color.RGBA{
	{R: 21, G: 67, B: 96, A: 255},   // azul oscuro
	{R: 20, G: 90, B: 50, A: 255},   // verde
	{R: 146, G: 43, B: 33, A: 255},  // rojo ladrillo
	{R: 154, G: 125, B: 10, A: 255}, // ocre
	{R: 74, G: 35, B: 90, A: 255},   // púrpura
}

// PlaceholderInitials devuelve las primeras tres letras del nombre en
// mayúsculas ("Empresa" si el nombre está vacío → "EMP").
func PlaceholderInitials(nombre string) string {
	if nombre == "" {
		nombre = "Empresa"
	}
	initials := strings.ToUpper(nombre)
	if utf8.RuneCountInString(initials) > 3 {
		runes := []rune(initials)
		initials = string(runes[:3])
	}
	return initials
}

// PlaceholderLogo genera un PNG con un círculo de color y las iniciales de la
// empresa, para usar cuando no hay logo registrado o el archivo no es válido.
func PlaceholderLogo(nombre string) []byte {
	initials := PlaceholderInitials(nombre)
	bg := placeholderPalette[hashName(nombre)%len(placeholderPalette)]

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	cx, cy := placeholderSize/2, placeholderSize/2
	r := placeholderSize/2 - 2
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, bg)
			}
		}
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, initials).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.P(
			cx-width/2,
			cy+face.Metrics().Ascent.Ceil()/2,
		),
	}
	d.DrawString(initials)

	var buf bytes.Buffer
	// Encode sobre un buffer en memoria no falla con RGBA válido.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func hashName(s string) int {
	h := 0
	for _, c := range s {
		h = h*31 + int(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
