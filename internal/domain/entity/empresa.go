package entity

import "time"

// Empresa representa una organización/tenant del sistema. Toda fila de roles,
// asignaciones y feature flags pertenece a exactamente una empresa.
type Empresa struct {
	ID         string
	Nombre     string
	Direccion  string
	Horario    string // horario de atención, texto libre (ej. "L-V 8:00-18:00")
	WebhookURL string // URL opcional para notificaciones salientes (feedback)
	Activo     bool   // desactivación suave; nunca se borra en duro
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
