package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/application/usecase"
	"github.com/jhoicas/visitas-api/internal/domain"
)

// ZoneHandler maneja zonas sueltas, fuera del ciclo guardar-visita.
type ZoneHandler struct {
	uc *usecase.ZoneUseCase
}

// NewZoneHandler construye el handler de zonas.
func NewZoneHandler(uc *usecase.ZoneUseCase) *ZoneHandler {
	return &ZoneHandler{uc: uc}
}

// ListByVisit godoc
// @Summary      Listar zonas de una visita
// @Tags         zonas
// @Produce      json
// @Param        visitaId  path  string  true  "ID de la visita"
// @Success      200  {array}  dto.ZoneResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /zonas/{visitaId} [get]
func (h *ZoneHandler) ListByVisit(c *fiber.Ctx) error {
	out, err := h.uc.ListByVisit(c.Params("visitaId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar zona a una visita existente
// @Tags         zonas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateZoneRequest  true  "datos de la zona"
// @Success      201   {object}  dto.ZoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /zonas [post]
func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return zoneError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar zona
// @Tags         zonas
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "ID de la zona"
// @Param        body  body  dto.ZoneInput  true  "datos de la zona"
// @Success      200   {object}  dto.ZoneResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /zonas/{id} [put]
func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	var in dto.ZoneInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar zona
// @Tags         zonas
// @Produce      json
// @Param        id  path  string  true  "ID de la zona"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /zonas/{id} [delete]
func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return zoneError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Zona eliminada"})
}

func zoneError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
