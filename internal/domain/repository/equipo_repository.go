package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EquipoRepository define el puerto de persistencia para el inventario de
// equipos: marcas y modelos globales, equipos por empresa.
type EquipoRepository interface {
	CreateMarca(ctx context.Context, marca *entity.Marca) error
	GetMarcaByNombre(ctx context.Context, nombre string) (*entity.Marca, error)
	ListMarcas(ctx context.Context) ([]entity.Marca, error)

	CreateModelo(ctx context.Context, modelo *entity.Modelo) error
	GetModeloByID(ctx context.Context, id string) (*entity.Modelo, error)
	// ListModelosByMarca soporta la cascada marca → modelo de los formularios.
	ListModelosByMarca(ctx context.Context, marcaID string) ([]entity.Modelo, error)

	CreateEquipo(ctx context.Context, equipo *entity.Equipo) error
	GetEquipoByID(ctx context.Context, id string) (*entity.Equipo, error)
	GetEquipoBySerial(ctx context.Context, empresaID, serial string) (*entity.Equipo, error)
	UpdateEquipo(ctx context.Context, equipo *entity.Equipo) error
	ListEquiposByEmpresa(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Equipo, error)
}
