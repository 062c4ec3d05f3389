package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// RolHandler maneja roles y su matriz de permisos.
type RolHandler struct {
	rolUC     *usecase.RolUseCase
	permisoUC *usecase.PermisoUseCase
}

// NewRolHandler construye el handler inyectando los casos de uso.
func NewRolHandler(rolUC *usecase.RolUseCase, permisoUC *usecase.PermisoUseCase) *RolHandler {
	return &RolHandler{rolUC: rolUC, permisoUC: permisoUC}
}

// Create godoc
// @Summary      Crear rol con alcance (empresa, sección)
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRolRequest  true  "Datos del rol"
// @Success      201   {object}  dto.RolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.rolUC.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa o la sección no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol por ID
// @Tags         roles
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.RolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RolHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.rolUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rol (nombre/descripción; el alcance no se mueve)
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del rol"
// @Param        body  body  dto.UpdateRolRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.RolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RolHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.rolUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rol (permisos y asignaciones cascadean)
// @Tags         roles
// @Param        id  path  string  true  "ID del rol"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RolHandler) Delete(c *fiber.Ctx) error {
	if err := h.rolUC.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar roles de una empresa, opcionalmente por sección
// @Tags         roles
// @Produce      json
// @Param        empresa_id  query  string  true   "ID de la empresa"
// @Param        seccion_id  query  string  false  "ID de la sección (cascada de formularios)"
// @Success      200  {array}  dto.RolResponse
// @Router       /api/roles [get]
func (h *RolHandler) List(c *fiber.Ctx) error {
	empresaID := c.Query("empresa_id")
	if empresaID == "" {
		empresaID = GetEmpresaID(c)
	}
	if empresaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresa_id es requerido"})
	}
	out, err := h.rolUC.List(c.Context(), empresaID, c.Query("seccion_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListPermisos godoc
// @Summary      Matriz de permisos de un rol
// @Tags         roles
// @Produce      json
// @Param        id  path  string  true  "ID del rol"
// @Success      200  {array}  dto.PermisoResponse
// @Router       /api/roles/{id}/permisos [get]
func (h *RolHandler) ListPermisos(c *fiber.Ctx) error {
	out, err := h.permisoUC.ListByRol(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SyncPermisos godoc
// @Summary      Sincronizar la matriz de permisos de un rol
// @Description  Guardado tipo upsert: inserta filas nuevas y actualiza las que
// @Description  cambiaron; nunca borra filas existentes de la matriz.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del rol"
// @Param        body  body  dto.SyncPermisosRequest true  "Entradas de la matriz"
// @Success      200   {object}  dto.SyncPermisosResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/permisos [put]
func (h *RolHandler) SyncPermisos(c *fiber.Ctx) error {
	var in dto.SyncPermisosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.permisoUC.Sync(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
