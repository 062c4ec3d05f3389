package dto

import "time"

// CreateRolRequest entrada para crear un rol (alcance empresa + sección).
type CreateRolRequest struct {
	EmpresaID   string `json:"empresa_id" validate:"required,uuid"`
	SeccionID   string `json:"seccion_id" validate:"required,uuid"`
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdateRolRequest actualización parcial de un rol.
type UpdateRolRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=500"`
}

// RolResponse salida de un rol.
type RolResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	SeccionID   string    `json:"seccion_id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de permisos
// ──────────────────────────────────────────────────────────────────────────────

// PermisoEntry una entrada del conjunto de trabajo del editor de permisos.
// El cliente envía el conjunto completo, incluido Acciones, aunque Allow sea
// false: así reactivar conserva las elecciones por acción previas.
type PermisoEntry struct {
	FuncionalidadID string          `json:"funcionalidad_id" validate:"required,uuid"`
	Allow           bool            `json:"allow"`
	Acciones        map[string]bool `json:"acciones"`
}

// SyncPermisosRequest conjunto de trabajo a sincronizar contra la matriz.
type SyncPermisosRequest struct {
	Entries []PermisoEntry `json:"entries" validate:"dive"`
}

// SyncPermisosResponse cuántas filas se insertaron y actualizaron.
type SyncPermisosResponse struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// PermisoResponse fila persistida de la matriz de permisos.
type PermisoResponse struct {
	ID              string          `json:"id"`
	RolID           string          `json:"rol_id"`
	FuncionalidadID string          `json:"funcionalidad_id"`
	Allow           bool            `json:"allow"`
	Acciones        map[string]bool `json:"acciones"`
}
