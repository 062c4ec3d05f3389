package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// accesoChecker es el contrato mínimo que necesita el middleware para resolver
// el acceso. Lo implementa *usecase.AccesoUseCase; el uso de interfaz evita el
// import circular.
type accesoChecker interface {
	CheckByCodigo(ctx context.Context, userID, empresaID, codigo, accion string) (*dto.CheckAccesoResponse, error)
}

// RequireAcceso devuelve un middleware Fiber que verifica si el usuario del token
// puede ejecutar la acción sobre la funcionalidad identificada por su código.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID y LocalEmpresaID).
//
// Comportamiento:
//   - 403 Forbidden → flag apagado, sin rol en la sección, o acción no habilitada.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si faltan claims en el contexto, responde 401 (el AuthMiddleware debería haberlos puesto).
func RequireAcceso(codigo, accion string, checker accesoChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		empresaID := GetEmpresaID(c)
		if userID == "" || empresaID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id o empresa_id no encontrado en el token",
			})
		}

		out, err := checker.CheckByCodigo(c.Context(), userID, empresaID, codigo, accion)
		if err != nil {
			// Fallo de infraestructura: no convertirlo en un 403 silencioso.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESO_CHECK_FAILED",
				Message: "no se pudo verificar el acceso, intente más tarde",
			})
		}

		if !out.Permitido {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCESO_DENEGADO",
				Message: out.Motivo,
			})
		}

		return c.Next()
	}
}
