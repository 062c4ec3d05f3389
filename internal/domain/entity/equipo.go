package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un equipo.
const (
	EquipoOperativo     = "operativo"
	EquipoMantenimiento = "mantenimiento"
	EquipoBaja          = "baja"
)

// Marca de equipos; global, compartida entre empresas.
type Marca struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Modelo de equipo; pertenece a una Marca (seleccionar marca filtra modelos).
type Modelo struct {
	ID        string
	MarcaID   string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Equipo unidad física del inventario de una empresa.
// Serial único por empresa.
type Equipo struct {
	ID          string
	EmpresaID   string
	ModeloID    string
	Serial      string
	Estado      string // operativo, mantenimiento, baja
	Costo       decimal.Decimal
	FechaCompra *time.Time
	Observacion string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
