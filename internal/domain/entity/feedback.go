package entity

import "time"

// Estados del ciclo de vida de un feedback.
const (
	FeedbackAbierto   = "abierto"
	FeedbackEnProceso = "en_proceso"
	FeedbackResuelto  = "resuelto"
)

// Feedback mensaje de soporte/sugerencia enviado por un usuario de una empresa.
type Feedback struct {
	ID        string
	EmpresaID string
	UserID    string
	Asunto    string
	Mensaje   string
	Estado    string // abierto, en_proceso, resuelto
	Respuesta string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransicionValida indica si el cambio de estado está permitido.
// abierto → en_proceso → resuelto; se permite reabrir un resuelto.
func TransicionValida(desde, hacia string) bool {
	switch desde {
	case FeedbackAbierto:
		return hacia == FeedbackEnProceso || hacia == FeedbackResuelto
	case FeedbackEnProceso:
		return hacia == FeedbackResuelto || hacia == FeedbackAbierto
	case FeedbackResuelto:
		return hacia == FeedbackAbierto
	}
	return false
}
