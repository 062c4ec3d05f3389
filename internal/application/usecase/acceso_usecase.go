package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/rbac"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// AccesoUseCase carga las filas que el resolver necesita y decide el acceso
// de un usuario a una funcionalidad/acción dentro de una empresa. El cliente
// lo consume para pintar la UI; el middleware HTTP para proteger rutas.
type AccesoUseCase struct {
	catalogoRepo   repository.CatalogoRepository
	flagRepo       repository.EmpresaFuncionalidadRepository
	asignacionRepo repository.UsuarioRolRepository
	permisoRepo    repository.RolPermisoRepository
}

// NewAccesoUseCase construye el caso de uso de resolución de acceso.
func NewAccesoUseCase(
	catalogoRepo repository.CatalogoRepository,
	flagRepo repository.EmpresaFuncionalidadRepository,
	asignacionRepo repository.UsuarioRolRepository,
	permisoRepo repository.RolPermisoRepository,
) *AccesoUseCase {
	return &AccesoUseCase{
		catalogoRepo:   catalogoRepo,
		flagRepo:       flagRepo,
		asignacionRepo: asignacionRepo,
		permisoRepo:    permisoRepo,
	}
}

// Check resuelve el acceso por id de funcionalidad.
func (uc *AccesoUseCase) Check(ctx context.Context, userID, empresaID, funcionalidadID, accion string) (*dto.CheckAccesoResponse, error) {
	funcionalidad, err := uc.catalogoRepo.GetFuncionalidadByID(ctx, funcionalidadID)
	if err != nil {
		return nil, err
	}
	if funcionalidad == nil || !funcionalidad.Activo {
		return &dto.CheckAccesoResponse{Permitido: false, Motivo: rbac.MotivoFuncionalidadInvalid}, nil
	}

	seccionID, err := uc.catalogoRepo.SeccionDeFuncionalidad(ctx, funcionalidadID)
	if err != nil {
		return nil, err
	}
	if seccionID == "" {
		return &dto.CheckAccesoResponse{Permitido: false, Motivo: rbac.MotivoFuncionalidadInvalid}, nil
	}

	flag, err := uc.flagRepo.GetByEmpresaYFuncionalidad(ctx, empresaID, funcionalidadID)
	if err != nil {
		return nil, err
	}
	asignacion, err := uc.asignacionRepo.GetByUsuarioYSeccion(ctx, empresaID, userID, seccionID)
	if err != nil {
		return nil, err
	}

	q := rbac.Consulta{Flag: flag, Asignacion: asignacion, Accion: accion}
	if asignacion != nil {
		permiso, err := uc.permisoRepo.GetByRolYFuncionalidad(ctx, asignacion.RolID, funcionalidadID)
		if err != nil {
			return nil, err
		}
		q.Permiso = permiso
	}

	d := rbac.Resolver(q)
	return &dto.CheckAccesoResponse{Permitido: d.Permitido, Motivo: d.Motivo}, nil
}

// CheckByCodigo resuelve el acceso por código de funcionalidad (lo usa el
// middleware de rutas, que conoce códigos estables y no ids).
func (uc *AccesoUseCase) CheckByCodigo(ctx context.Context, userID, empresaID, codigo, accion string) (*dto.CheckAccesoResponse, error) {
	funcionalidad, err := uc.catalogoRepo.GetFuncionalidadByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if funcionalidad == nil {
		return &dto.CheckAccesoResponse{Permitido: false, Motivo: rbac.MotivoFuncionalidadInvalid}, nil
	}
	return uc.Check(ctx, userID, empresaID, funcionalidad.ID, accion)
}
