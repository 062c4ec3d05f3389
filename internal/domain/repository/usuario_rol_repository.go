package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// UsuarioRolRepository persiste las asignaciones usuario→rol por sección.
type UsuarioRolRepository interface {
	ListByUsuario(ctx context.Context, empresaID, userID string) ([]*entity.UsuarioRol, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.UsuarioRol, error)
	GetByUsuarioYSeccion(ctx context.Context, empresaID, userID, seccionID string) (*entity.UsuarioRol, error)
	CreateBatch(ctx context.Context, asignaciones []*entity.UsuarioRol) error
	DeleteByIDs(ctx context.Context, ids []string) error
}
