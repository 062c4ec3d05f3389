package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMarcaRequest entrada para crear una marca de equipos.
type CreateMarcaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// MarcaResponse salida de una marca.
type MarcaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CreateModeloRequest entrada para crear un modelo dentro de una marca.
type CreateModeloRequest struct {
	MarcaID string `json:"marca_id" validate:"required,uuid"`
	Nombre  string `json:"nombre" validate:"required,min=1,max=100"`
}

// ModeloResponse salida de un modelo.
type ModeloResponse struct {
	ID      string `json:"id"`
	MarcaID string `json:"marca_id"`
	Nombre  string `json:"nombre"`
}

// CreateEquipoRequest entrada para registrar un equipo del inventario.
type CreateEquipoRequest struct {
	ModeloID    string          `json:"modelo_id" validate:"required,uuid"`
	Serial      string          `json:"serial" validate:"required,min=1,max=100"`
	Estado      string          `json:"estado" validate:"omitempty,oneof=operativo mantenimiento baja"`
	Costo       decimal.Decimal `json:"costo"`
	FechaCompra *time.Time      `json:"fecha_compra"`
	Observacion string          `json:"observacion" validate:"omitempty,max=500"`
}

// UpdateEquipoRequest actualización parcial de un equipo.
type UpdateEquipoRequest struct {
	Estado      *string          `json:"estado" validate:"omitempty,oneof=operativo mantenimiento baja"`
	Costo       *decimal.Decimal `json:"costo"`
	Observacion *string          `json:"observacion" validate:"omitempty,max=500"`
	Activo      *bool            `json:"activo"`
}

// EquipoResponse salida de un equipo.
type EquipoResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	ModeloID    string          `json:"modelo_id"`
	Serial      string          `json:"serial"`
	Estado      string          `json:"estado"`
	Costo       decimal.Decimal `json:"costo"`
	FechaCompra *time.Time      `json:"fecha_compra,omitempty"`
	Observacion string          `json:"observacion"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EquipoListResponse lista paginada de equipos.
type EquipoListResponse struct {
	Items []EquipoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
