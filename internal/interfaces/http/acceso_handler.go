package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// AccesoHandler expone el resolver de acceso al cliente; la UI lo usa para
// decidir qué pintar sin duplicar la lógica del servidor.
type AccesoHandler struct {
	uc *usecase.AccesoUseCase
}

// NewAccesoHandler construye el handler inyectando el caso de uso.
func NewAccesoHandler(uc *usecase.AccesoUseCase) *AccesoHandler {
	return &AccesoHandler{uc: uc}
}

// Check godoc
// @Summary      Resolver el acceso del usuario del token a una funcionalidad
// @Description  Acepta funcionalidad por id o por código. La respuesta es
// @Description  siempre 200 con la decisión y el motivo; un 4xx/5xx indica un
// @Description  problema con la consulta, no una denegación.
// @Tags         acceso
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckAccesoRequest  true  "Funcionalidad y acción a consultar"
// @Success      200   {object}  dto.CheckAccesoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/acceso/check [post]
func (h *AccesoHandler) Check(c *fiber.Ctx) error {
	var in dto.CheckAccesoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	userID, empresaID := GetUserID(c), GetEmpresaID(c)

	var (
		out *dto.CheckAccesoResponse
		err error
	)
	if in.FuncionalidadID != "" {
		out, err = h.uc.Check(c.Context(), userID, empresaID, in.FuncionalidadID, in.Accion)
	} else {
		out, err = h.uc.CheckByCodigo(c.Context(), userID, empresaID, in.Codigo, in.Accion)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
