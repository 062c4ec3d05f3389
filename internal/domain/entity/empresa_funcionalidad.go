package entity

import "time"

// EmpresaFuncionalidad feature flag por empresa sobre una funcionalidad.
// La ausencia de fila implica enabled=true (default-on): solo se persisten
// filas para funcionalidades deshabilitadas; al volver al default la fila
// se elimina.
type EmpresaFuncionalidad struct {
	ID              string
	EmpresaID       string
	FuncionalidadID string
	Enabled         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
