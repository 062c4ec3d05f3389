package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// Get* devuelven (nil, nil) cuando la fila no existe.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByID(ctx context.Context, id string) (*entity.Empresa, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	List(ctx context.Context, soloActivas bool, limit, offset int) ([]*entity.Empresa, error)
}
