package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// EquipoUseCase inventario de equipos: marcas y modelos globales, equipos
// por empresa. Seleccionar una marca filtra los modelos (cascada de los
// formularios).
type EquipoUseCase struct {
	repo repository.EquipoRepository
}

// NewEquipoUseCase construye el caso de uso de inventario.
func NewEquipoUseCase(repo repository.EquipoRepository) *EquipoUseCase {
	return &EquipoUseCase{repo: repo}
}

// CreateMarca crea una marca; el nombre es único.
func (uc *EquipoUseCase) CreateMarca(ctx context.Context, in dto.CreateMarcaRequest) (*dto.MarcaResponse, error) {
	existing, _ := uc.repo.GetMarcaByNombre(ctx, in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	marca := &entity.Marca{ID: uuid.New().String(), Nombre: in.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.CreateMarca(ctx, marca); err != nil {
		return nil, err
	}
	return &dto.MarcaResponse{ID: marca.ID, Nombre: marca.Nombre}, nil
}

// ListMarcas lista todas las marcas.
func (uc *EquipoUseCase) ListMarcas(ctx context.Context) ([]dto.MarcaResponse, error) {
	marcas, err := uc.repo.ListMarcas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		out = append(out, dto.MarcaResponse{ID: m.ID, Nombre: m.Nombre})
	}
	return out, nil
}

// CreateModelo crea un modelo dentro de una marca existente.
func (uc *EquipoUseCase) CreateModelo(ctx context.Context, in dto.CreateModeloRequest) (*dto.ModeloResponse, error) {
	now := time.Now()
	modelo := &entity.Modelo{ID: uuid.New().String(), MarcaID: in.MarcaID, Nombre: in.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.CreateModelo(ctx, modelo); err != nil {
		return nil, err
	}
	return &dto.ModeloResponse{ID: modelo.ID, MarcaID: modelo.MarcaID, Nombre: modelo.Nombre}, nil
}

// ListModelos lista los modelos de una marca (dropdown dependiente).
func (uc *EquipoUseCase) ListModelos(ctx context.Context, marcaID string) ([]dto.ModeloResponse, error) {
	modelos, err := uc.repo.ListModelosByMarca(ctx, marcaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModeloResponse, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, dto.ModeloResponse{ID: m.ID, MarcaID: m.MarcaID, Nombre: m.Nombre})
	}
	return out, nil
}

// CreateEquipo registra un equipo; el serial es único por empresa.
func (uc *EquipoUseCase) CreateEquipo(ctx context.Context, empresaID string, in dto.CreateEquipoRequest) (*dto.EquipoResponse, error) {
	modelo, err := uc.repo.GetModeloByID(ctx, in.ModeloID)
	if err != nil {
		return nil, err
	}
	if modelo == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetEquipoBySerial(ctx, empresaID, in.Serial)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EquipoOperativo
	}
	now := time.Now()
	equipo := &entity.Equipo{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		ModeloID:    in.ModeloID,
		Serial:      in.Serial,
		Estado:      estado,
		Costo:       in.Costo,
		FechaCompra: in.FechaCompra,
		Observacion: in.Observacion,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateEquipo(ctx, equipo); err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// GetEquipo obtiene un equipo; solo visible dentro de su empresa.
func (uc *EquipoUseCase) GetEquipo(ctx context.Context, empresaID, id string) (*dto.EquipoResponse, error) {
	equipo, err := uc.repo.GetEquipoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipo == nil || equipo.EmpresaID != empresaID {
		return nil, nil
	}
	return toEquipoResponse(equipo), nil
}

// UpdateEquipo actualización parcial; Activo=false es la baja suave.
func (uc *EquipoUseCase) UpdateEquipo(ctx context.Context, empresaID, id string, in dto.UpdateEquipoRequest) (*dto.EquipoResponse, error) {
	equipo, err := uc.repo.GetEquipoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipo == nil || equipo.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Estado != nil {
		equipo.Estado = *in.Estado
	}
	if in.Costo != nil {
		equipo.Costo = *in.Costo
	}
	if in.Observacion != nil {
		equipo.Observacion = *in.Observacion
	}
	if in.Activo != nil {
		equipo.Activo = *in.Activo
	}
	equipo.UpdatedAt = time.Now()
	if err := uc.repo.UpdateEquipo(ctx, equipo); err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// ListEquipos lista los equipos de la empresa con paginación.
func (uc *EquipoUseCase) ListEquipos(ctx context.Context, empresaID string, limit, offset int) (*dto.EquipoListResponse, error) {
	list, err := uc.repo.ListEquiposByEmpresa(ctx, empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipoResponse(e))
	}
	return &dto.EquipoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toEquipoResponse(e *entity.Equipo) *dto.EquipoResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipoResponse{
		ID:          e.ID,
		EmpresaID:   e.EmpresaID,
		ModeloID:    e.ModeloID,
		Serial:      e.Serial,
		Estado:      e.Estado,
		Costo:       e.Costo,
		FechaCompra: e.FechaCompra,
		Observacion: e.Observacion,
		Activo:      e.Activo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
