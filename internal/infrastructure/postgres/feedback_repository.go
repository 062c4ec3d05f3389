package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implementación del puerto FeedbackRepository sobre PostgreSQL.
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository construye el adaptador de persistencia para feedback.
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

// Create persiste un feedback nuevo.
func (r *FeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedbacks (id, empresa_id, user_id, asunto, mensaje, estado, respuesta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		feedback.ID, feedback.EmpresaID, feedback.UserID, feedback.Asunto,
		feedback.Mensaje, feedback.Estado, feedback.Respuesta,
		feedback.CreatedAt, feedback.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// GetByID obtiene un feedback por ID.
func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	query := `
		SELECT id, empresa_id, user_id, asunto, mensaje, estado, respuesta, created_at, updated_at
		FROM feedbacks WHERE id = $1`
	var f entity.Feedback
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.EmpresaID, &f.UserID, &f.Asunto, &f.Mensaje, &f.Estado,
		&f.Respuesta, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &f, nil
}

// Update actualiza estado y respuesta de un feedback.
func (r *FeedbackRepo) Update(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		UPDATE feedbacks SET estado = $2, respuesta = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, feedback.ID, feedback.Estado, feedback.Respuesta, feedback.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	return nil
}

// ListByEmpresa lista feedbacks de una empresa, opcionalmente filtrados por
// estado, de más reciente a más antiguo.
func (r *FeedbackRepo) ListByEmpresa(ctx context.Context, empresaID, estado string, limit, offset int) ([]*entity.Feedback, error) {
	query := `
		SELECT id, empresa_id, user_id, asunto, mensaje, estado, respuesta, created_at, updated_at
		FROM feedbacks
		WHERE empresa_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, empresaID, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.UserID, &f.Asunto, &f.Mensaje, &f.Estado, &f.Respuesta, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
