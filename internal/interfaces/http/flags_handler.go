package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// FlagsHandler maneja los feature flags de funcionalidades por empresa.
type FlagsHandler struct {
	uc *usecase.FlagsUseCase
}

// NewFlagsHandler construye el handler inyectando el caso de uso.
func NewFlagsHandler(uc *usecase.FlagsUseCase) *FlagsHandler {
	return &FlagsHandler{uc: uc}
}

// List godoc
// @Summary      Flags persistidos de una empresa
// @Description  Solo existen filas para funcionalidades deshabilitadas; lo que
// @Description  no aparece está habilitado por defecto.
// @Tags         flags
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.FlagResponse
// @Router       /api/empresas/{id}/flags [get]
func (h *FlagsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmpresa(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Sincronizar el conjunto de funcionalidades deshabilitadas
// @Description  Reemplaza el conjunto por diferencia: crea filas para las
// @Description  funcionalidades recién deshabilitadas y borra las rehabilitadas.
// @Tags         flags
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la empresa"
// @Param        body  body  dto.SyncFlagsRequest true  "Funcionalidades deshabilitadas"
// @Success      200   {object}  dto.SyncFlagsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/flags [put]
func (h *FlagsHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncFlagsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Sync(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
