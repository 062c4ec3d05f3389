package dto

import "time"

// CreateFeedbackRequest entrada para crear un feedback.
type CreateFeedbackRequest struct {
	Asunto  string `json:"asunto" validate:"required,min=1,max=200"`
	Mensaje string `json:"mensaje" validate:"required,min=1,max=5000"`
}

// UpdateFeedbackRequest cambio de estado y/o respuesta del soporte.
type UpdateFeedbackRequest struct {
	Estado    *string `json:"estado" validate:"omitempty,oneof=abierto en_proceso resuelto"`
	Respuesta *string `json:"respuesta" validate:"omitempty,max=5000"`
}

// FeedbackResponse salida de un feedback.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	UserID    string    `json:"user_id"`
	Asunto    string    `json:"asunto"`
	Mensaje   string    `json:"mensaje"`
	Estado    string    `json:"estado"`
	Respuesta string    `json:"respuesta"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackListResponse lista paginada de feedback.
type FeedbackListResponse struct {
	Items []FeedbackResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// FeedbackEvent evento push del buzón (websocket y webhook saliente).
type FeedbackEvent struct {
	Tipo     string           `json:"tipo"` // insert | update
	Feedback FeedbackResponse `json:"feedback"`
}
