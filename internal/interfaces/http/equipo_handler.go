package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// EquipoHandler maneja el inventario de equipos y el catálogo global de
// marcas y modelos (la cascada Marca → Modelo de los formularios).
type EquipoHandler struct {
	uc *usecase.EquipoUseCase
}

// NewEquipoHandler construye el handler inyectando el caso de uso.
func NewEquipoHandler(uc *usecase.EquipoUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc}
}

// CreateMarca godoc
// @Summary      Crear marca
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarcaRequest  true  "Nombre de la marca"
// @Success      201   {object}  dto.MarcaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marcas [post]
func (h *EquipoHandler) CreateMarca(c *fiber.Ctx) error {
	var in dto.CreateMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateMarca(c.Context(), in)
	if err != nil {
		return equipoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMarcas godoc
// @Summary      Listar marcas
// @Tags         equipos
// @Produce      json
// @Success      200  {array}  dto.MarcaResponse
// @Router       /api/marcas [get]
func (h *EquipoHandler) ListMarcas(c *fiber.Ctx) error {
	out, err := h.uc.ListMarcas(c.Context())
	if err != nil {
		return equipoError(c, err)
	}
	return c.JSON(out)
}

// CreateModelo godoc
// @Summary      Crear modelo dentro de una marca
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModeloRequest  true  "Marca y nombre del modelo"
// @Success      201   {object}  dto.ModeloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/modelos [post]
func (h *EquipoHandler) CreateModelo(c *fiber.Ctx) error {
	var in dto.CreateModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateModelo(c.Context(), in)
	if err != nil {
		return equipoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListModelos godoc
// @Summary      Listar modelos, opcionalmente filtrados por marca
// @Tags         equipos
// @Produce      json
// @Param        marca_id  query  string  false  "ID de la marca (cascada de formularios)"
// @Success      200  {array}  dto.ModeloResponse
// @Router       /api/modelos [get]
func (h *EquipoHandler) ListModelos(c *fiber.Ctx) error {
	out, err := h.uc.ListModelos(c.Context(), c.Query("marca_id"))
	if err != nil {
		return equipoError(c, err)
	}
	return c.JSON(out)
}

// CreateEquipo godoc
// @Summary      Registrar equipo en el inventario de la empresa
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipoRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.EquipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipos [post]
func (h *EquipoHandler) CreateEquipo(c *fiber.Ctx) error {
	var in dto.CreateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateEquipo(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return equipoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetEquipo godoc
// @Summary      Obtener equipo por ID
// @Tags         equipos
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [get]
func (h *EquipoHandler) GetEquipo(c *fiber.Ctx) error {
	out, err := h.uc.GetEquipo(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return equipoError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	return c.JSON(out)
}

// UpdateEquipo godoc
// @Summary      Actualizar equipo
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EquipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [put]
func (h *EquipoHandler) UpdateEquipo(c *fiber.Ctx) error {
	var in dto.UpdateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateEquipo(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return equipoError(c, err)
	}
	return c.JSON(out)
}

// ListEquipos godoc
// @Summary      Listar el inventario de equipos de la empresa
// @Tags         equipos
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.EquipoListResponse
// @Router       /api/equipos [get]
func (h *EquipoHandler) ListEquipos(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListEquipos(c.Context(), GetEmpresaID(c), limit, offset)
	if err != nil {
		return equipoError(c, err)
	}
	return c.JSON(out)
}

// equipoError traduce errores de dominio de inventario a HTTP.
func equipoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso referenciado no existe"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro con esa clave"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
