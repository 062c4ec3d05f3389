package dto

import "time"

// CreateEmpleadoRequest entrada para registrar un empleado.
type CreateEmpleadoRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Documento string `json:"documento" validate:"required,min=3,max=30"`
	Cargo     string `json:"cargo" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono" validate:"omitempty,max=30"`
}

// UpdateEmpleadoRequest actualización parcial de un empleado.
type UpdateEmpleadoRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Cargo    *string `json:"cargo" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
	Activo   *bool   `json:"activo"`
}

// EmpleadoResponse salida de un empleado.
type EmpleadoResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento"`
	Cargo     string    `json:"cargo"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmpleadoListResponse lista paginada de empleados.
type EmpleadoListResponse struct {
	Items []EmpleadoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
