package repository

import "context"

// ResumenEmpresa agregados de solo lectura para el tablero de una empresa.
type ResumenEmpresa struct {
	EmpleadosActivos     int
	EquiposOperativos    int
	EquiposMantenimiento int
	EquiposBaja          int
	FeedbackAbiertos     int
	FeedbackEnProceso    int
	RolesDefinidos       int
}

// DashboardRepository consultas de agregación para el tablero.
type DashboardRepository interface {
	Resumen(ctx context.Context, empresaID string) (*ResumenEmpresa, error)
}
