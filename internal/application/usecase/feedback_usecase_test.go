package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeFeedbackRepo struct {
	rows map[string]*entity.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *entity.Feedback) error {
	f.rows[fb.ID] = fb
	return nil
}

func (f *fakeFeedbackRepo) GetByID(_ context.Context, id string) (*entity.Feedback, error) {
	return f.rows[id], nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, fb *entity.Feedback) error {
	f.rows[fb.ID] = fb
	return nil
}

func (f *fakeFeedbackRepo) ListByEmpresa(_ context.Context, empresaID, estado string, _, _ int) ([]*entity.Feedback, error) {
	var out []*entity.Feedback
	for _, fb := range f.rows {
		if fb.EmpresaID == empresaID && (estado == "" || fb.Estado == estado) {
			out = append(out, fb)
		}
	}
	return out, nil
}

// fakePublisher acumula los eventos publicados al canal en vivo.
type fakePublisher struct {
	eventos []dto.FeedbackEvent
}

func (f *fakePublisher) Publish(_ string, event dto.FeedbackEvent) {
	f.eventos = append(f.eventos, event)
}

// fakeWebhookSender registra las entregas al webhook de la empresa. La
// entrega real corre en una goroutine, así que el registro va con mutex y
// los tests lo leen vía entregas().
type fakeWebhookSender struct {
	mu   sync.Mutex
	err  error
	urls []string
}

func (f *fakeWebhookSender) Send(_ context.Context, url string, _ dto.FeedbackEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return f.err
}

func (f *fakeWebhookSender) entregas() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

// logSink buffer con mutex para leer lo logueado desde otra goroutine.
type logSink struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *logSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func armarFeedbackUC(webhookURL string) (*usecase.FeedbackUseCase, *fakeFeedbackRepo, *fakePublisher, *fakeWebhookSender) {
	repo := &fakeFeedbackRepo{rows: map[string]*entity.Feedback{}}
	empresas := &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{
		"e1": {ID: "e1", Nombre: "Acme", WebhookURL: webhookURL, Activo: true},
	}}
	pub := &fakePublisher{}
	wh := &fakeWebhookSender{}
	return usecase.NewFeedbackUseCase(repo, empresas, pub, wh, zerolog.Nop()), repo, pub, wh
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFeedbackCreate_QuedaAbiertoYNotifica(t *testing.T) {
	uc, repo, pub, wh := armarFeedbackUC("https://hooks.acme.co/feedback")

	out, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Pantalla en blanco",
		Mensaje: "El listado de equipos no carga",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.FeedbackAbierto, out.Estado, "todo feedback nace abierto")
	assert.Len(t, repo.rows, 1)

	require.Len(t, pub.eventos, 1, "debe publicarse un evento al canal en vivo")
	assert.Equal(t, usecase.FeedbackEventInsert, pub.eventos[0].Tipo)
	assert.Equal(t, out.ID, pub.eventos[0].Feedback.ID)

	require.Eventually(t, func() bool {
		return len(wh.entregas()) == 1
	}, time.Second, 10*time.Millisecond, "debe entregarse al webhook de la empresa")
	assert.Equal(t, "https://hooks.acme.co/feedback", wh.entregas()[0])
}

func TestFeedbackCreate_EmpresaSinWebhookNoEnvia(t *testing.T) {
	uc, _, pub, wh := armarFeedbackUC("")

	_, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Sugerencia",
		Mensaje: "Exportar a CSV",
	})
	require.NoError(t, err)

	assert.Len(t, pub.eventos, 1, "el canal en vivo no depende del webhook")
	assert.Empty(t, wh.entregas(), "sin URL configurada no hay entrega saliente")
}

func TestFeedbackCreate_WebhookFallidoNoFallaElCreate(t *testing.T) {
	repo := &fakeFeedbackRepo{rows: map[string]*entity.Feedback{}}
	empresas := &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{
		"e1": {ID: "e1", Nombre: "Acme", WebhookURL: "https://hooks.acme.co/feedback", Activo: true},
	}}
	wh := &fakeWebhookSender{err: errors.New("connection refused")}
	sink := &logSink{}
	uc := usecase.NewFeedbackUseCase(repo, empresas, &fakePublisher{}, wh, zerolog.New(sink))

	out, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Sin conexión",
		Mensaje: "El webhook está caído",
	})
	require.NoError(t, err, "la entrega es best-effort: el alta no depende del webhook")
	require.NotNil(t, out)
	assert.Len(t, repo.rows, 1, "el feedback queda escrito aunque la entrega falle")

	// El fallo debe quedar en el log con empresa y feedback identificados.
	require.Eventually(t, func() bool {
		return strings.Contains(sink.String(), "entrega fallida")
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, sink.String(), "e1")
	assert.Contains(t, sink.String(), out.ID)
}

func TestFeedbackUpdate_TransicionValidaNotifica(t *testing.T) {
	uc, _, pub, _ := armarFeedbackUC("")

	creado, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Error en reporte",
		Mensaje: "El PDF sale vacío",
	})
	require.NoError(t, err)

	enProceso := entity.FeedbackEnProceso
	respuesta := "Estamos revisando"
	out, err := uc.Update(context.Background(), "e1", creado.ID, dto.UpdateFeedbackRequest{
		Estado:    &enProceso,
		Respuesta: &respuesta,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.FeedbackEnProceso, out.Estado)
	assert.Equal(t, "Estamos revisando", out.Respuesta)

	require.Len(t, pub.eventos, 2)
	assert.Equal(t, usecase.FeedbackEventUpdate, pub.eventos[1].Tipo)
}

func TestFeedbackUpdate_TransicionInvalidaEsConflicto(t *testing.T) {
	uc, repo, _, _ := armarFeedbackUC("")

	creado, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Duda",
		Mensaje: "¿Cómo agrego una marca?",
	})
	require.NoError(t, err)

	// resuelto → en_proceso no está permitido (solo reabrir).
	resuelto := entity.FeedbackResuelto
	_, err = uc.Update(context.Background(), "e1", creado.ID, dto.UpdateFeedbackRequest{Estado: &resuelto})
	require.NoError(t, err)

	enProceso := entity.FeedbackEnProceso
	_, err = uc.Update(context.Background(), "e1", creado.ID, dto.UpdateFeedbackRequest{Estado: &enProceso})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.FeedbackResuelto, repo.rows[creado.ID].Estado, "el estado no debe cambiar")
}

func TestFeedbackGetByID_OtraEmpresaNoLoVe(t *testing.T) {
	uc, _, _, _ := armarFeedbackUC("")

	creado, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{
		Asunto:  "Privado",
		Mensaje: "Solo para e1",
	})
	require.NoError(t, err)

	out, err := uc.GetByID(context.Background(), "e2", creado.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "un feedback no es visible fuera de su empresa")
}

func TestFeedbackList_FiltraPorEstado(t *testing.T) {
	uc, _, _, _ := armarFeedbackUC("")

	a, err := uc.Create(context.Background(), "e1", "u1", dto.CreateFeedbackRequest{Asunto: "A", Mensaje: "m"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "e1", "u2", dto.CreateFeedbackRequest{Asunto: "B", Mensaje: "m"})
	require.NoError(t, err)

	resuelto := entity.FeedbackResuelto
	_, err = uc.Update(context.Background(), "e1", a.ID, dto.UpdateFeedbackRequest{Estado: &resuelto})
	require.NoError(t, err)

	abiertos, err := uc.List(context.Background(), "e1", entity.FeedbackAbierto, 20, 0)
	require.NoError(t, err)
	require.Len(t, abiertos.Items, 1)
	assert.Equal(t, "B", abiertos.Items[0].Asunto)
}
