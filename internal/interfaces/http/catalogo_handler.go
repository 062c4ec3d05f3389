package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// CatalogoHandler maneja el catálogo de permisos: secciones, módulos y
// funcionalidades. La mutación del catálogo es operación de plataforma
// (rol admin); el árbol lo lee cualquier usuario autenticado.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler inyectando el caso de uso.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Tree godoc
// @Summary      Árbol completo del catálogo (Sección → Módulo → Funcionalidad)
// @Tags         catalogo
// @Produce      json
// @Param        solo_con_funcionalidades  query  bool  false  "Omitir módulos sin funcionalidades activas"
// @Success      200  {object}  dto.CatalogoTreeResponse
// @Router       /api/catalogo [get]
func (h *CatalogoHandler) Tree(c *fiber.Ctx) error {
	soloConFuncionalidades := c.QueryBool("solo_con_funcionalidades", false)
	out, err := h.uc.Tree(c.Context(), soloConFuncionalidades)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateSeccion godoc
// @Summary      Crear sección del catálogo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSeccionRequest  true  "Datos de la sección"
// @Success      201   {object}  dto.SeccionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/secciones [post]
func (h *CatalogoHandler) CreateSeccion(c *fiber.Ctx) error {
	var in dto.CreateSeccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateSeccion(c.Context(), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSeccion godoc
// @Summary      Actualizar sección
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la sección"
// @Param        body  body  dto.UpdateCatalogoItemRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.SeccionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogo/secciones/{id} [put]
func (h *CatalogoHandler) UpdateSeccion(c *fiber.Ctx) error {
	var in dto.UpdateCatalogoItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateSeccion(c.Context(), c.Params("id"), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.JSON(out)
}

// CreateModulo godoc
// @Summary      Crear módulo dentro de una sección
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModuloRequest  true  "Datos del módulo"
// @Success      201   {object}  dto.ModuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/modulos [post]
func (h *CatalogoHandler) CreateModulo(c *fiber.Ctx) error {
	var in dto.CreateModuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateModulo(c.Context(), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateModulo godoc
// @Summary      Actualizar módulo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del módulo"
// @Param        body  body  dto.UpdateCatalogoItemRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.ModuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogo/modulos/{id} [put]
func (h *CatalogoHandler) UpdateModulo(c *fiber.Ctx) error {
	var in dto.UpdateCatalogoItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateModulo(c.Context(), c.Params("id"), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.JSON(out)
}

// CreateFuncionalidad godoc
// @Summary      Crear funcionalidad dentro de un módulo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFuncionalidadRequest  true  "Datos de la funcionalidad (incluye acciones)"
// @Success      201   {object}  dto.FuncionalidadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/funcionalidades [post]
func (h *CatalogoHandler) CreateFuncionalidad(c *fiber.Ctx) error {
	var in dto.CreateFuncionalidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CreateFuncionalidad(c.Context(), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateFuncionalidad godoc
// @Summary      Actualizar funcionalidad (incluye lista de acciones)
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la funcionalidad"
// @Param        body  body  dto.UpdateCatalogoItemRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.FuncionalidadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogo/funcionalidades/{id} [put]
func (h *CatalogoHandler) UpdateFuncionalidad(c *fiber.Ctx) error {
	var in dto.UpdateCatalogoItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateFuncionalidad(c.Context(), c.Params("id"), in)
	if err != nil {
		return catalogoError(c, err)
	}
	return c.JSON(out)
}

// catalogoError traduce errores de dominio del catálogo a respuestas HTTP.
func catalogoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el elemento del catálogo no existe"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un elemento con ese código"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
