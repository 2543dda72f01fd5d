package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes produce un PNG mínimo válido para los tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ──────────────────────────────────────────────────────────────────────────────
// LocalImageSource
// ──────────────────────────────────────────────────────────────────────────────

func TestTryLoad_ImagenValida(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foto.png"), pngBytes(t), 0o644))

	src := NewLocalImageSource(dir)
	img := src.TryLoad("/uploads/foto.png")
	require.NotNil(t, img)
	assert.Equal(t, "png", img.Ext)
	assert.NotEmpty(t, img.Bytes)
}

func TestTryLoad_ArchivoInexistente(t *testing.T) {
	src := NewLocalImageSource(t.TempDir())
	assert.Nil(t, src.TryLoad("/uploads/no-existe.jpg"))
}

func TestTryLoad_ArchivoCorrupto(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roto.png"), []byte("no soy una imagen"), 0o644))

	src := NewLocalImageSource(dir)
	assert.Nil(t, src.TryLoad("/uploads/roto.png"),
		"un archivo que no decodifica como imagen debe tratarse como ausente")
}

func TestTryLoad_ReferenciaVacia(t *testing.T) {
	src := NewLocalImageSource(t.TempDir())
	assert.Nil(t, src.TryLoad(""))
}

func TestTryLoad_NoEscapaDelDirectorio(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "..", "fuera.png")
	require.NoError(t, os.WriteFile(outside, pngBytes(t), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	src := NewLocalImageSource(dir)
	// Solo se usa el último segmento de la referencia; "fuera.png" no existe
	// dentro del directorio de uploads, así que no debe cargarse.
	assert.Nil(t, src.TryLoad("../fuera.png"))
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceholderLogo
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceholderInitials(t *testing.T) {
	assert.Equal(t, "SER", PlaceholderInitials("Servicios Andinos"))
	assert.Equal(t, "AB", PlaceholderInitials("ab"))
	assert.Equal(t, "EMP", PlaceholderInitials(""), "sin nombre usa el texto de relleno")
}

func TestPlaceholderLogo_EsPNGDecodeable(t *testing.T) {
	raw := PlaceholderLogo("Servicios Andinos")
	require.NotEmpty(t, raw)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, placeholderSize, cfg.Width)
	assert.Equal(t, placeholderSize, cfg.Height)
}

func TestPlaceholderLogo_MismoNombreMismoResultado(t *testing.T) {
	a := PlaceholderLogo("Servicios Andinos")
	b := PlaceholderLogo("Servicios Andinos")
	assert.Equal(t, a, b, "el logo de relleno debe ser estable por nombre")
}
