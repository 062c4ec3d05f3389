package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	EmpresaID string `json:"empresa_id" validate:"required,uuid"`
	Nombre    string `json:"nombre" validate:"omitempty,max=200"`
	Rol       string `json:"rol" validate:"omitempty,oneof=admin soporte usuario"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUsuarioRequest actualización parcial de un usuario (administración).
type UpdateUsuarioRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Rol    *string `json:"rol" validate:"omitempty,oneof=admin soporte usuario"`
	Estado *string `json:"estado" validate:"omitempty,oneof=active inactive suspended"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioListResponse lista paginada de usuarios de una empresa.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
