// Package storage resuelve las referencias de imagen del informe (fotos de
// zona, logos) contra el directorio de uploads y fabrica el logo de relleno
// cuando la empresa no tiene uno utilizable.
package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"

	"github.com/jhoicas/visitas-api/internal/application/report"
)

var _ report.ImageSource = (*LocalImageSource)(nil)

// LocalImageSource carga imágenes desde el directorio de uploads.
// Las referencias llegan como URL relativa (ej. "/uploads/foto.jpg"); solo se
// usa el último segmento, así una referencia maliciosa no escapa del directorio.
type LocalImageSource struct {
	dir string
}

// NewLocalImageSource construye la fuente sobre el directorio de uploads.
func NewLocalImageSource(dir string) *LocalImageSource {
	return &LocalImageSource{dir: dir}
}

// TryLoad devuelve la imagen validada o nil si el archivo no existe o no es
// una imagen decodificable. Nunca retorna error: el renderer decide el fallback.
func (s *LocalImageSource) TryLoad(ref string) *report.Image {
	if ref == "" {
		return nil
	}
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil
	}
	// DecodeConfig valida el encabezado sin decodificar los píxeles.
	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	ext := "png"
	if format == "jpeg" {
		ext = "jpg"
	}
	return &report.Image{Bytes: raw, Ext: ext}
}
