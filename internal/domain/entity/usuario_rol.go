package entity

import "time"

// UsuarioRol asigna un rol a un usuario dentro de una sección de una empresa.
// Clave compuesta (empresa_id, user_id, seccion_id): a lo sumo un rol por
// sección por usuario por empresa. Asignar dentro de una sección reemplaza
// la asignación previa de esa sección.
type UsuarioRol struct {
	ID        string
	EmpresaID string
	UserID    string
	SeccionID string
	RolID     string
	CreatedAt time.Time
}
