package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// DashboardUseCase agregados de solo lectura para el tablero de una empresa.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso del tablero.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumen devuelve los contadores del tablero de la empresa.
func (uc *DashboardUseCase) Resumen(ctx context.Context, empresaID string) (*dto.DashboardResponse, error) {
	r, err := uc.repo.Resumen(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		EmpleadosActivos:     r.EmpleadosActivos,
		EquiposOperativos:    r.EquiposOperativos,
		EquiposMantenimiento: r.EquiposMantenimiento,
		EquiposBaja:          r.EquiposBaja,
		FeedbackAbiertos:     r.FeedbackAbiertos,
		FeedbackEnProceso:    r.FeedbackEnProceso,
		RolesDefinidos:       r.RolesDefinidos,
	}, nil
}
