package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// FeedbackRepository define el puerto de persistencia para Feedback (DIP).
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, id string) (*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	// ListByEmpresa filtra opcionalmente por estado (estado vacío = todos).
	ListByEmpresa(ctx context.Context, empresaID, estado string, limit, offset int) ([]*entity.Feedback, error)
}
