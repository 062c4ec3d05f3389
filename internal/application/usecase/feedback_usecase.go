package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Tipos de evento del buzón de feedback.
const (
	FeedbackEventInsert = "insert"
	FeedbackEventUpdate = "update"
)

// FeedbackPublisher empuja eventos del buzón a los suscriptores en vivo
// (canal websocket por empresa). Lo implementa el hub de interfaces/http.
type FeedbackPublisher interface {
	Publish(empresaID string, event dto.FeedbackEvent)
}

// WebhookSender entrega un evento al webhook configurado por la empresa.
// La entrega es best-effort: un fallo se registra pero no revierte la escritura.
type WebhookSender interface {
	Send(ctx context.Context, url string, event dto.FeedbackEvent) error
}

// FeedbackUseCase buzón de soporte/sugerencias con notificación en vivo.
type FeedbackUseCase struct {
	repo        repository.FeedbackRepository
	empresaRepo repository.EmpresaRepository
	publisher   FeedbackPublisher
	webhook     WebhookSender
	log         zerolog.Logger
}

// NewFeedbackUseCase construye el caso de uso de feedback. publisher y
// webhook pueden ser nil (sin notificación en vivo, p. ej. en tests).
func NewFeedbackUseCase(
	repo repository.FeedbackRepository,
	empresaRepo repository.EmpresaRepository,
	publisher FeedbackPublisher,
	webhook WebhookSender,
	log zerolog.Logger,
) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo, empresaRepo: empresaRepo, publisher: publisher, webhook: webhook, log: log}
}

// Create registra un feedback en estado abierto y notifica a los
// suscriptores del buzón y al webhook de la empresa (si lo tiene).
func (uc *FeedbackUseCase) Create(ctx context.Context, empresaID, userID string, in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	now := time.Now()
	feedback := &entity.Feedback{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		UserID:    userID,
		Asunto:    in.Asunto,
		Mensaje:   in.Mensaje,
		Estado:    entity.FeedbackAbierto,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	out := toFeedbackResponse(feedback)
	uc.notificar(ctx, empresaID, dto.FeedbackEvent{Tipo: FeedbackEventInsert, Feedback: *out})
	return out, nil
}

// GetByID obtiene un feedback; solo visible dentro de su empresa.
func (uc *FeedbackUseCase) GetByID(ctx context.Context, empresaID, id string) (*dto.FeedbackResponse, error) {
	feedback, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil || feedback.EmpresaID != empresaID {
		return nil, nil
	}
	return toFeedbackResponse(feedback), nil
}

// Update cambia estado y/o respuesta. Las transiciones inválidas devuelven
// domain.ErrConflict. La actualización notifica a los suscriptores.
func (uc *FeedbackUseCase) Update(ctx context.Context, empresaID, id string, in dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil || feedback.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Estado != nil && *in.Estado != feedback.Estado {
		if !entity.TransicionValida(feedback.Estado, *in.Estado) {
			return nil, domain.ErrConflict
		}
		feedback.Estado = *in.Estado
	}
	if in.Respuesta != nil {
		feedback.Respuesta = *in.Respuesta
	}
	feedback.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	out := toFeedbackResponse(feedback)
	uc.notificar(ctx, empresaID, dto.FeedbackEvent{Tipo: FeedbackEventUpdate, Feedback: *out})
	return out, nil
}

// List lista el buzón de la empresa, opcionalmente filtrado por estado.
func (uc *FeedbackUseCase) List(ctx context.Context, empresaID, estado string, limit, offset int) (*dto.FeedbackListResponse, error) {
	list, err := uc.repo.ListByEmpresa(ctx, empresaID, estado, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFeedbackResponse(f))
	}
	return &dto.FeedbackListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// notificar empuja el evento al hub y al webhook de la empresa. Best-effort:
// la fila ya está escrita, así que un fallo de entrega se registra en el log
// pero nunca falla la petición. El POST al webhook sale en una goroutine
// para que un endpoint lento no retenga la respuesta al cliente.
func (uc *FeedbackUseCase) notificar(ctx context.Context, empresaID string, event dto.FeedbackEvent) {
	if uc.publisher != nil {
		uc.publisher.Publish(empresaID, event)
	}
	if uc.webhook == nil {
		return
	}
	empresa, err := uc.empresaRepo.GetByID(ctx, empresaID)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("empresa_id", empresaID).
			Str("feedback_id", event.Feedback.ID).
			Msg("webhook: no se pudo cargar la empresa")
		return
	}
	if empresa == nil || empresa.WebhookURL == "" {
		return
	}
	// El contexto de la petición muere al responder; el POST sigue vivo
	// hasta el timeout propio del notificador.
	sendCtx := context.WithoutCancel(ctx)
	go func() {
		if err := uc.webhook.Send(sendCtx, empresa.WebhookURL, event); err != nil {
			uc.log.Warn().Err(err).
				Str("empresa_id", empresaID).
				Str("feedback_id", event.Feedback.ID).
				Str("url", empresa.WebhookURL).
				Msg("webhook: entrega fallida")
		}
	}()
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	if f == nil {
		return nil
	}
	return &dto.FeedbackResponse{
		ID:        f.ID,
		EmpresaID: f.EmpresaID,
		UserID:    f.UserID,
		Asunto:    f.Asunto,
		Mensaje:   f.Mensaje,
		Estado:    f.Estado,
		Respuesta: f.Respuesta,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
