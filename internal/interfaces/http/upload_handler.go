package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/visitas-api/internal/application/dto"
)

// Extensiones de imagen aceptadas para logos y fotos de evidencia.
var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// UploadHandler guarda imágenes (logos, evidencia fotográfica) en disco local.
type UploadHandler struct {
	uploadsDir string
}

// NewUploadHandler construye el handler de uploads sobre el directorio dado.
func NewUploadHandler(uploadsDir string) *UploadHandler {
	return &UploadHandler{uploadsDir: uploadsDir}
}

// Upload godoc
// @Summary      Subir imagen (campo multipart "file")
// @Tags         archivos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen png/jpg/jpeg"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo file"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EXTENSION", Message: "solo se aceptan imágenes png, jpg o jpeg"})
	}
	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Prefijo uuid para evitar colisiones; del nombre original solo se conserva
	// el último segmento, sin separadores de ruta.
	name := uuid.NewString() + "_" + sanitizeFilename(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(h.uploadsDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: "/uploads/" + name})
}

// sanitizeFilename reduce el nombre a su último segmento y reemplaza espacios.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(name, " ", "_")
}
