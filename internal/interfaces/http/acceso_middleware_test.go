package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/rbac"
	apphttp "github.com/jhoicas/gestion-api/internal/interfaces/http"
)

// fakeChecker resuelve el acceso con una respuesta fija (o un error).
type fakeChecker struct {
	out *dto.CheckAccesoResponse
	err error
}

func (f *fakeChecker) CheckByCodigo(_ context.Context, _, _, _, _ string) (*dto.CheckAccesoResponse, error) {
	return f.out, f.err
}

// buildAccesoApp monta una ruta protegida por AuthMiddleware + RequireAcceso.
func buildAccesoApp(checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/recurso",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAcceso("inventario.equipos.gestion", "read", checker),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func TestRequireAcceso_PermitidoPasa(t *testing.T) {
	checker := &fakeChecker{out: &dto.CheckAccesoResponse{Permitido: true, Motivo: rbac.MotivoPermitido}}
	app := buildAccesoApp(checker)

	resp := doAccesoRequest(t, app, tokenForRole(t, "usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAcceso_DenegadoRetorna403ConMotivo(t *testing.T) {
	checker := &fakeChecker{out: &dto.CheckAccesoResponse{Permitido: false, Motivo: rbac.MotivoSinAsignacion}}
	app := buildAccesoApp(checker)

	resp := doAccesoRequest(t, app, tokenForRole(t, "usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCESO_DENEGADO")
	assert.Contains(t, string(body), rbac.MotivoSinAsignacion,
		"el motivo del resolver debe viajar en la respuesta")
}

func TestRequireAcceso_FalloDeInfraRetorna503(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db caída")}
	app := buildAccesoApp(checker)

	resp := doAccesoRequest(t, app, tokenForRole(t, "usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"un error de infraestructura no debe disfrazarse de denegación")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCESO_CHECK_FAILED")
}

func TestRequireAcceso_SinTokenRetorna401(t *testing.T) {
	checker := &fakeChecker{out: &dto.CheckAccesoResponse{Permitido: true}}
	app := buildAccesoApp(checker)

	resp := doAccesoRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func doAccesoRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
