package entity

import "time"

// Empleado registro de personal de una empresa.
type Empleado struct {
	ID        string
	EmpresaID string
	Nombre    string
	Documento string // documento de identidad, único por empresa
	Cargo     string
	Email     string
	Telefono  string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
