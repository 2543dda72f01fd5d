package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/application/report"
	"github.com/jhoicas/visitas-api/internal/domain"
)

// ReportHandler genera el PDF del informe de visita y opcionalmente lo envía
// por correo al cliente.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar PDF del informe de visita
// @Description  Devuelve el PDF como adjunto. Con enviar_email=true además lo
// @Description  envía al correo del cliente de la visita.
// @Tags         informes
// @Accept       json
// @Produce      application/pdf
// @Param        visitaId  path  string                     true   "ID de la visita"
// @Param        body      body  dto.GenerateReportRequest  false  "opciones"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /generar-pdf/{visitaId} [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	visitaID := c.Params("visitaId")

	// El cuerpo es opcional; sin cuerpo se asume no enviar correo.
	var in dto.GenerateReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	var (
		pdf      []byte
		filename string
		err      error
	)
	if in.EnviarEmail {
		pdf, filename, err = h.uc.GenerateAndEmail(c.UserContext(), visitaID)
	} else {
		pdf, filename, err = h.uc.Generate(c.UserContext(), visitaID)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
		case errors.Is(err, domain.ErrRenderPrecondition):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RENDER_PRECONDITION", Message: "la visita debe tener al menos una zona con foto"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
