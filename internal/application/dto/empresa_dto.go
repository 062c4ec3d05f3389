package dto

import "time"

// CreateEmpresaRequest entrada para crear una empresa.
type CreateEmpresaRequest struct {
	Nombre     string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion  string `json:"direccion" validate:"omitempty,max=300"`
	Horario    string `json:"horario" validate:"omitempty,max=200"`
	WebhookURL string `json:"webhook_url" validate:"omitempty,url"`
}

// UpdateEmpresaRequest entrada para actualizar una empresa (campos opcionales).
type UpdateEmpresaRequest struct {
	Nombre     *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Direccion  *string `json:"direccion" validate:"omitempty,max=300"`
	Horario    *string `json:"horario" validate:"omitempty,max=200"`
	WebhookURL *string `json:"webhook_url" validate:"omitempty,url"`
	Activo     *bool   `json:"activo"`
}

// EmpresaResponse salida de una empresa.
type EmpresaResponse struct {
	ID         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Direccion  string    `json:"direccion"`
	Horario    string    `json:"horario"`
	WebhookURL string    `json:"webhook_url"`
	Activo     bool      `json:"activo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
