package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/application/usecase"
	"github.com/jhoicas/visitas-api/internal/domain"
)

// VisitHandler maneja las visitas técnicas y sus zonas embebidas.
type VisitHandler struct {
	uc *usecase.VisitUseCase
}

// NewVisitHandler construye el handler de visitas.
func NewVisitHandler(uc *usecase.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// List godoc
// @Summary      Listar visitas (admin ve todas; otros solo las propias)
// @Tags         visitas
// @Produce      json
// @Success      200  {array}  dto.VisitSummaryResponse
// @Security     BearerAuth
// @Router       /visitas [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar visita técnica con sus zonas
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVisitRequest  true  "datos de la visita"
// @Success      201   {object}  dto.CreateVisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /visita [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return visitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener visita con sus zonas
// @Tags         visitas
// @Produce      json
// @Param        id  path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /visita/{id} [get]
func (h *VisitHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return visitError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar visita (reemplaza todas las zonas)
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la visita"
// @Param        body  body  dto.SaveVisitRequest  true  "datos de la visita"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /visita/{id} [put]
func (h *VisitHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return visitError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Visita actualizada"})
}

// Delete godoc
// @Summary      Eliminar visita y sus zonas
// @Tags         visitas
// @Produce      json
// @Param        id  path  string  true  "ID de la visita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /visita/{id} [delete]
func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return visitError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Visita eliminada"})
}

// visitError traduce los errores de dominio de visitas a respuestas HTTP.
func visitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
