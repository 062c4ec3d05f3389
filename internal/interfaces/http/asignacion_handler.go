package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// AsignacionHandler maneja las asignaciones usuario→rol por sección.
// La empresa siempre sale del token: un admin de una empresa no puede tocar
// asignaciones de otra.
type AsignacionHandler struct {
	uc *usecase.AsignacionUseCase
}

// NewAsignacionHandler construye el handler inyectando el caso de uso.
func NewAsignacionHandler(uc *usecase.AsignacionUseCase) *AsignacionHandler {
	return &AsignacionHandler{uc: uc}
}

// List godoc
// @Summary      Asignaciones vigentes de un usuario en la empresa
// @Tags         asignaciones
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/usuarios/{id}/asignaciones [get]
func (h *AsignacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUsuario(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Sincronizar las asignaciones de un usuario
// @Description  Aplica el conjunto deseado por diferencia dentro de una
// @Description  transacción; a lo sumo un rol por sección.
// @Tags         asignaciones
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del usuario"
// @Param        body  body  dto.SyncAsignacionesRequest  true  "Conjunto deseado"
// @Success      200   {object}  dto.SyncAsignacionesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/asignaciones [put]
func (h *AsignacionHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncAsignacionesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Sync(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return asignacionError(c, err)
	}
	return c.JSON(out)
}

// Asignar godoc
// @Summary      Asignar un rol puntual a un usuario
// @Description  Reemplaza la asignación previa de la sección del rol, si existe.
// @Tags         asignaciones
// @Produce      json
// @Param        id     path  string  true  "ID del usuario"
// @Param        rolId  path  string  true  "ID del rol"
// @Success      200    {object}  dto.AsignacionResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/asignaciones/{rolId} [put]
func (h *AsignacionHandler) Asignar(c *fiber.Ctx) error {
	out, err := h.uc.Asignar(c.Context(), GetEmpresaID(c), c.Params("id"), c.Params("rolId"))
	if err != nil {
		return asignacionError(c, err)
	}
	return c.JSON(out)
}

// asignacionError traduce errores de dominio de asignaciones a HTTP.
func asignacionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol inexistente, de otra empresa o fuera de su sección"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con las asignaciones actuales"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
