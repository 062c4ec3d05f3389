package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EmpleadoRepository define el puerto de persistencia para Empleado (DIP).
type EmpleadoRepository interface {
	Create(ctx context.Context, empleado *entity.Empleado) error
	GetByID(ctx context.Context, id string) (*entity.Empleado, error)
	GetByDocumento(ctx context.Context, empresaID, documento string) (*entity.Empleado, error)
	Update(ctx context.Context, empleado *entity.Empleado) error
	ListByEmpresa(ctx context.Context, empresaID string, soloActivos bool, limit, offset int) ([]*entity.Empleado, error)
}
