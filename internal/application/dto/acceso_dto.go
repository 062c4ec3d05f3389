package dto

// SyncFlagsRequest funcionalidades explícitamente deshabilitadas para una
// empresa; todo lo que no aparezca queda habilitado (default-on).
type SyncFlagsRequest struct {
	Deshabilitadas []string `json:"deshabilitadas" validate:"dive,uuid"`
}

// SyncFlagsResponse altas y bajas aplicadas por la sincronización.
type SyncFlagsResponse struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
}

// FlagResponse fila persistida de feature flag.
type FlagResponse struct {
	ID              string `json:"id"`
	EmpresaID       string `json:"empresa_id"`
	FuncionalidadID string `json:"funcionalidad_id"`
	Enabled         bool   `json:"enabled"`
}

// AsignacionEntry rol deseado para el usuario en una sección.
type AsignacionEntry struct {
	SeccionID string `json:"seccion_id" validate:"required,uuid"`
	RolID     string `json:"rol_id" validate:"required,uuid"`
}

// SyncAsignacionesRequest conjunto deseado de asignaciones de un usuario en
// una empresa; a lo sumo una entrada por sección.
type SyncAsignacionesRequest struct {
	Asignaciones []AsignacionEntry `json:"asignaciones" validate:"dive"`
}

// SyncAsignacionesResponse altas y bajas aplicadas.
type SyncAsignacionesResponse struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
}

// AsignacionResponse fila persistida de asignación usuario→rol.
type AsignacionResponse struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresa_id"`
	UserID    string `json:"user_id"`
	SeccionID string `json:"seccion_id"`
	RolID     string `json:"rol_id"`
}

// CheckAccesoRequest consulta de resolución de acceso.
type CheckAccesoRequest struct {
	FuncionalidadID string `json:"funcionalidad_id" validate:"required_without=Codigo,omitempty,uuid"`
	Codigo          string `json:"codigo" validate:"required_without=FuncionalidadID"`
	Accion          string `json:"accion" validate:"omitempty,max=50"`
}

// CheckAccesoResponse decisión del resolver.
type CheckAccesoResponse struct {
	Permitido bool   `json:"permitido"`
	Motivo    string `json:"motivo"`
}
