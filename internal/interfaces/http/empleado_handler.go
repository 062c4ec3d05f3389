package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// EmpleadoHandler maneja el directorio de empleados de la empresa del token.
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler inyectando el caso de uso.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpleadoRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmpleadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un empleado con ese documento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         empleados
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmpleadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado (incluye baja con activo=false)
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del empleado"
// @Param        body  body  dto.UpdateEmpleadoRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.EmpleadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [put]
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Update(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados de la empresa
// @Tags         empleados
// @Produce      json
// @Param        solo_activos  query  bool  false  "Solo empleados activos"
// @Param        limit         query  int   false  "Límite"   default(20)
// @Param        offset        query  int   false  "Offset"   default(0)
// @Success      200  {object}  dto.EmpleadoListResponse
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	soloActivos := c.QueryBool("solo_activos", false)
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), GetEmpresaID(c), soloActivos, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
