package dto

// DashboardResponse agregados de una empresa para el tablero.
type DashboardResponse struct {
	EmpleadosActivos     int `json:"empleados_activos"`
	EquiposOperativos    int `json:"equipos_operativos"`
	EquiposMantenimiento int `json:"equipos_mantenimiento"`
	EquiposBaja          int `json:"equipos_baja"`
	FeedbackAbiertos     int `json:"feedback_abiertos"`
	FeedbackEnProceso    int `json:"feedback_en_proceso"`
	RolesDefinidos       int `json:"roles_definidos"`
}
