package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	apphttp "github.com/jhoicas/gestion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto de empresas
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpresaStore struct {
	empresas map[string]*entity.Empresa
	getErr   error
}

func (f *fakeEmpresaStore) Create(_ context.Context, e *entity.Empresa) error {
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaStore) GetByID(_ context.Context, id string) (*entity.Empresa, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.empresas[id], nil
}

func (f *fakeEmpresaStore) GetByNombre(_ context.Context, nombre string) (*entity.Empresa, error) {
	for _, e := range f.empresas {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpresaStore) Update(_ context.Context, e *entity.Empresa) error {
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaStore) List(_ context.Context, _ bool, _, _ int) ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for _, e := range f.empresas {
		out = append(out, e)
	}
	return out, nil
}

func buildEmpresaApp(store *fakeEmpresaStore) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewEmpresaHandler(usecase.NewEmpresaUseCase(store))
	app.Put("/empresas/:id", handler.Update)
	return app
}

func doEmpresaPut(t *testing.T, app *fiber.App, id, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/empresas/"+id, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaUpdate_WebhookURLInvalidaRechazada(t *testing.T) {
	store := &fakeEmpresaStore{empresas: map[string]*entity.Empresa{
		"e1": {ID: "e1", Nombre: "Acme", WebhookURL: "https://hooks.acme.co/feedback", Activo: true},
	}}
	app := buildEmpresaApp(store)

	resp := doEmpresaPut(t, app, "e1", `{"webhook_url":"no-es-una-url"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "https://hooks.acme.co/feedback", store.empresas["e1"].WebhookURL,
		"una URL inválida no debe persistirse")
}

func TestEmpresaUpdate_WebhookURLValidaPersiste(t *testing.T) {
	store := &fakeEmpresaStore{empresas: map[string]*entity.Empresa{
		"e1": {ID: "e1", Nombre: "Acme", Activo: true},
	}}
	app := buildEmpresaApp(store)

	resp := doEmpresaPut(t, app, "e1", `{"webhook_url":"https://hooks.acme.co/nuevo"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://hooks.acme.co/nuevo", store.empresas["e1"].WebhookURL)
}

func TestEmpresaUpdate_SentinelEnvueltoMapeaA404(t *testing.T) {
	store := &fakeEmpresaStore{
		empresas: map[string]*entity.Empresa{},
		getErr:   fmt.Errorf("empresa por id: %w", domain.ErrNotFound),
	}
	app := buildEmpresaApp(store)

	resp := doEmpresaPut(t, app, "e1", `{"nombre":"Acme"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}
