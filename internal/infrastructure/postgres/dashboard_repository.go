package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura para el tablero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Resumen arma los contadores del tablero de una empresa en una sola consulta
// (COUNT ... FILTER evita un round-trip por métrica).
func (r *DashboardRepo) Resumen(ctx context.Context, empresaID string) (*repository.ResumenEmpresa, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM empleados WHERE empresa_id = $1 AND activo = true),
			(SELECT COUNT(*) FILTER (WHERE estado = 'operativo')     FROM equipos WHERE empresa_id = $1),
			(SELECT COUNT(*) FILTER (WHERE estado = 'mantenimiento') FROM equipos WHERE empresa_id = $1),
			(SELECT COUNT(*) FILTER (WHERE estado = 'baja')          FROM equipos WHERE empresa_id = $1),
			(SELECT COUNT(*) FILTER (WHERE estado = 'abierto')       FROM feedbacks WHERE empresa_id = $1),
			(SELECT COUNT(*) FILTER (WHERE estado = 'en_proceso')    FROM feedbacks WHERE empresa_id = $1),
			(SELECT COUNT(*) FROM roles WHERE empresa_id = $1)`
	var res repository.ResumenEmpresa
	err := r.q.QueryRow(ctx, query, empresaID).Scan(
		&res.EmpleadosActivos,
		&res.EquiposOperativos, &res.EquiposMantenimiento, &res.EquiposBaja,
		&res.FeedbackAbiertos, &res.FeedbackEnProceso,
		&res.RolesDefinidos,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen empresa: %w", err)
	}
	return &res, nil
}
