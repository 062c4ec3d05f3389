package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// RolRepository define el puerto de persistencia para Rol (DIP).
type RolRepository interface {
	Create(ctx context.Context, rol *entity.Rol) error
	GetByID(ctx context.Context, id string) (*entity.Rol, error)
	Update(ctx context.Context, rol *entity.Rol) error
	// Delete elimina el rol; la base cascadea rol_permisos y usuario_roles.
	Delete(ctx context.Context, id string) error
	// List filtra por empresa y opcionalmente por sección (seccionID vacío = todas).
	List(ctx context.Context, empresaID, seccionID string) ([]*entity.Rol, error)
}

// RolPermisoRepository persiste la matriz de permisos (rol, funcionalidad).
type RolPermisoRepository interface {
	ListByRol(ctx context.Context, rolID string) ([]*entity.RolPermiso, error)
	GetByRolYFuncionalidad(ctx context.Context, rolID, funcionalidadID string) (*entity.RolPermiso, error)
	// CreateBatch inserta todas las filas en un solo lote.
	CreateBatch(ctx context.Context, permisos []*entity.RolPermiso) error
	Update(ctx context.Context, permiso *entity.RolPermiso) error
}
