package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// FeedbackHandler maneja el buzón de soporte y sugerencias.
type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

// NewFeedbackHandler construye el handler inyectando el caso de uso.
func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar feedback
// @Description  Queda en estado abierto y se notifica a los suscriptores del
// @Description  buzón vía websocket, y al webhook de la empresa si lo tiene.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedbackRequest  true  "Asunto y mensaje"
// @Success      201   {object}  dto.FeedbackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/feedbacks [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener feedback por ID
// @Tags         feedback
// @Produce      json
// @Param        id   path  string  true  "ID del feedback"
// @Success      200  {object}  dto.FeedbackResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feedbacks/{id} [get]
func (h *FeedbackHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "feedback no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atender feedback: cambiar estado y/o responder
// @Description  Estados: abierto → en_proceso → resuelto. Una transición
// @Description  inválida devuelve 409.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del feedback"
// @Param        body  body  dto.UpdateFeedbackRequest  true  "Estado y/o respuesta"
// @Success      200   {object}  dto.FeedbackResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/feedbacks/{id} [put]
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Update(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "feedback no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el buzón de la empresa
// @Tags         feedback
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado (abierto|en_proceso|resuelto)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.FeedbackListResponse
// @Router       /api/feedbacks [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), GetEmpresaID(c), c.Query("estado"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
