package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/catalog"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// CatalogoUseCase administra el catálogo global Seccion/Modulo/Funcionalidad
// y arma el árbol navegable para los editores.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso del catálogo.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Tree carga los tres niveles del catálogo y arma el árbol ordenado.
// Si cualquiera de las tres cargas falla se aborta: nunca árboles parciales.
// Con soloConFuncionalidades=true se filtran secciones/módulos vacíos (vista
// de los editores de permisos y flags; el navegador del catálogo pasa false).
func (uc *CatalogoUseCase) Tree(ctx context.Context, soloConFuncionalidades bool) (*dto.CatalogoTreeResponse, error) {
	secciones, err := uc.repo.ListSecciones(ctx)
	if err != nil {
		return nil, err
	}
	modulos, err := uc.repo.ListModulos(ctx)
	if err != nil {
		return nil, err
	}
	funcionalidades, err := uc.repo.ListFuncionalidades(ctx)
	if err != nil {
		return nil, err
	}

	tree := catalog.BuildTree(secciones, modulos, funcionalidades)
	if soloConFuncionalidades {
		tree = catalog.ConFuncionalidades(tree)
	}
	return toTreeResponse(tree), nil
}

// CreateSeccion crea una sección; el código es único global.
func (uc *CatalogoUseCase) CreateSeccion(ctx context.Context, in dto.CreateSeccionRequest) (*dto.SeccionResponse, error) {
	existing, _ := uc.repo.GetSeccionByCodigo(ctx, in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	s := &entity.Seccion{
		ID:          uuid.New().String(),
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Orden:       in.Orden,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateSeccion(ctx, s); err != nil {
		return nil, err
	}
	out := toSeccionResponse(*s, nil)
	return &out, nil
}

// UpdateSeccion actualización parcial de una sección.
func (uc *CatalogoUseCase) UpdateSeccion(ctx context.Context, id string, in dto.UpdateCatalogoItemRequest) (*dto.SeccionResponse, error) {
	s, err := uc.repo.GetSeccionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		s.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		s.Descripcion = *in.Descripcion
	}
	if in.Orden != nil {
		s.Orden = *in.Orden
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.UpdateSeccion(ctx, s); err != nil {
		return nil, err
	}
	out := toSeccionResponse(*s, nil)
	return &out, nil
}

// CreateModulo crea un módulo dentro de una sección existente.
func (uc *CatalogoUseCase) CreateModulo(ctx context.Context, in dto.CreateModuloRequest) (*dto.ModuloResponse, error) {
	seccion, err := uc.repo.GetSeccionByID(ctx, in.SeccionID)
	if err != nil {
		return nil, err
	}
	if seccion == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	m := &entity.Modulo{
		ID:          uuid.New().String(),
		SeccionID:   in.SeccionID,
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Orden:       in.Orden,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateModulo(ctx, m); err != nil {
		return nil, err
	}
	out := toModuloResponse(*m, nil)
	return &out, nil
}

// UpdateModulo actualización parcial; Activo=false es la baja suave.
func (uc *CatalogoUseCase) UpdateModulo(ctx context.Context, id string, in dto.UpdateCatalogoItemRequest) (*dto.ModuloResponse, error) {
	m, err := uc.repo.GetModuloByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	if in.Orden != nil {
		m.Orden = *in.Orden
	}
	if in.Activo != nil {
		m.Activo = *in.Activo
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.UpdateModulo(ctx, m); err != nil {
		return nil, err
	}
	out := toModuloResponse(*m, nil)
	return &out, nil
}

// CreateFuncionalidad crea una funcionalidad dentro de un módulo existente.
func (uc *CatalogoUseCase) CreateFuncionalidad(ctx context.Context, in dto.CreateFuncionalidadRequest) (*dto.FuncionalidadResponse, error) {
	modulo, err := uc.repo.GetModuloByID(ctx, in.ModuloID)
	if err != nil {
		return nil, err
	}
	if modulo == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetFuncionalidadByCodigo(ctx, in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	f := &entity.Funcionalidad{
		ID:          uuid.New().String(),
		ModuloID:    in.ModuloID,
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Acciones:    in.Acciones,
		Orden:       in.Orden,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateFuncionalidad(ctx, f); err != nil {
		return nil, err
	}
	out := toFuncionalidadResponse(*f)
	return &out, nil
}

// UpdateFuncionalidad actualización parcial; Activo=false es la baja suave.
func (uc *CatalogoUseCase) UpdateFuncionalidad(ctx context.Context, id string, in dto.UpdateCatalogoItemRequest) (*dto.FuncionalidadResponse, error) {
	f, err := uc.repo.GetFuncionalidadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		f.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		f.Descripcion = *in.Descripcion
	}
	if in.Orden != nil {
		f.Orden = *in.Orden
	}
	if in.Acciones != nil {
		f.Acciones = in.Acciones
	}
	if in.Activo != nil {
		f.Activo = *in.Activo
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.UpdateFuncionalidad(ctx, f); err != nil {
		return nil, err
	}
	out := toFuncionalidadResponse(*f)
	return &out, nil
}

// ── Mapeo árbol → DTO ─────────────────────────────────────────────────────────

func toTreeResponse(tree []catalog.SeccionNode) *dto.CatalogoTreeResponse {
	secciones := make([]dto.SeccionResponse, 0, len(tree))
	for _, s := range tree {
		secciones = append(secciones, toSeccionResponse(s.Seccion, s.Modulos))
	}
	return &dto.CatalogoTreeResponse{Secciones: secciones}
}

func toSeccionResponse(s entity.Seccion, nodos []catalog.ModuloNode) dto.SeccionResponse {
	modulos := make([]dto.ModuloResponse, 0, len(nodos))
	for _, m := range nodos {
		modulos = append(modulos, toModuloResponse(m.Modulo, m.Funcionalidades))
	}
	return dto.SeccionResponse{
		ID:          s.ID,
		Codigo:      s.Codigo,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Orden:       s.Orden,
		Modulos:     modulos,
	}
}

func toModuloResponse(m entity.Modulo, funcs []entity.Funcionalidad) dto.ModuloResponse {
	fs := make([]dto.FuncionalidadResponse, 0, len(funcs))
	for _, f := range funcs {
		fs = append(fs, toFuncionalidadResponse(f))
	}
	return dto.ModuloResponse{
		ID:              m.ID,
		SeccionID:       m.SeccionID,
		Codigo:          m.Codigo,
		Nombre:          m.Nombre,
		Descripcion:     m.Descripcion,
		Orden:           m.Orden,
		Activo:          m.Activo,
		Funcionalidades: fs,
	}
}

func toFuncionalidadResponse(f entity.Funcionalidad) dto.FuncionalidadResponse {
	return dto.FuncionalidadResponse{
		ID:          f.ID,
		ModuloID:    f.ModuloID,
		Codigo:      f.Codigo,
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Acciones:    f.Acciones,
		Orden:       f.Orden,
		Activo:      f.Activo,
	}
}
