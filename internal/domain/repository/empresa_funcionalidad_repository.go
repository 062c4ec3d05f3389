package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EmpresaFuncionalidadRepository persiste los feature flags por empresa.
// Solo existen filas para funcionalidades deshabilitadas; la ausencia de
// fila se interpreta como habilitada.
type EmpresaFuncionalidadRepository interface {
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.EmpresaFuncionalidad, error)
	GetByEmpresaYFuncionalidad(ctx context.Context, empresaID, funcionalidadID string) (*entity.EmpresaFuncionalidad, error)
	CreateBatch(ctx context.Context, flags []*entity.EmpresaFuncionalidad) error
	// DeleteByIDs borra las filas indicadas en un solo DELETE ... IN (...).
	DeleteByIDs(ctx context.Context, ids []string) error
}
