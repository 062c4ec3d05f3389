package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// CatalogoRepository define el puerto de persistencia para el catálogo global
// Seccion/Modulo/Funcionalidad. Los tres listados se cargan planos y el árbol
// se arma en memoria (paquete catalog).
type CatalogoRepository interface {
	CreateSeccion(ctx context.Context, s *entity.Seccion) error
	UpdateSeccion(ctx context.Context, s *entity.Seccion) error
	GetSeccionByID(ctx context.Context, id string) (*entity.Seccion, error)
	GetSeccionByCodigo(ctx context.Context, codigo string) (*entity.Seccion, error)
	ListSecciones(ctx context.Context) ([]entity.Seccion, error)

	CreateModulo(ctx context.Context, m *entity.Modulo) error
	UpdateModulo(ctx context.Context, m *entity.Modulo) error
	GetModuloByID(ctx context.Context, id string) (*entity.Modulo, error)
	ListModulos(ctx context.Context) ([]entity.Modulo, error)

	CreateFuncionalidad(ctx context.Context, f *entity.Funcionalidad) error
	UpdateFuncionalidad(ctx context.Context, f *entity.Funcionalidad) error
	GetFuncionalidadByID(ctx context.Context, id string) (*entity.Funcionalidad, error)
	GetFuncionalidadByCodigo(ctx context.Context, codigo string) (*entity.Funcionalidad, error)
	ListFuncionalidades(ctx context.Context) ([]entity.Funcionalidad, error)

	// SeccionDeFuncionalidad devuelve el id de la sección dueña de la
	// funcionalidad (vía su módulo); "" si la funcionalidad no existe.
	SeccionDeFuncionalidad(ctx context.Context, funcionalidadID string) (string, error)
}
