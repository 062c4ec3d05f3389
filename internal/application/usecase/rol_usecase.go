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

// RolUseCase administra roles con alcance (empresa, sección).
type RolUseCase struct {
	rolRepo      repository.RolRepository
	empresaRepo  repository.EmpresaRepository
	catalogoRepo repository.CatalogoRepository
}

// NewRolUseCase construye el caso de uso de roles.
func NewRolUseCase(rolRepo repository.RolRepository, empresaRepo repository.EmpresaRepository, catalogoRepo repository.CatalogoRepository) *RolUseCase {
	return &RolUseCase{rolRepo: rolRepo, empresaRepo: empresaRepo, catalogoRepo: catalogoRepo}
}

// Create crea un rol verificando que la empresa y la sección existan.
// Las colisiones de nombre entre secciones o empresas distintas se permiten.
func (uc *RolUseCase) Create(ctx context.Context, in dto.CreateRolRequest) (*dto.RolResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	seccion, err := uc.catalogoRepo.GetSeccionByID(ctx, in.SeccionID)
	if err != nil {
		return nil, err
	}
	if seccion == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	rol := &entity.Rol{
		ID:          uuid.New().String(),
		EmpresaID:   in.EmpresaID,
		SeccionID:   in.SeccionID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rolRepo.Create(ctx, rol); err != nil {
		return nil, err
	}
	return toRolResponse(rol), nil
}

// GetByID obtiene un rol por ID; (nil, nil) si no existe.
func (uc *RolUseCase) GetByID(ctx context.Context, id string) (*dto.RolResponse, error) {
	rol, err := uc.rolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, nil
	}
	return toRolResponse(rol), nil
}

// Update actualización parcial (nombre/descripción; el alcance no se mueve).
func (uc *RolUseCase) Update(ctx context.Context, id string, in dto.UpdateRolRequest) (*dto.RolResponse, error) {
	rol, err := uc.rolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		rol.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		rol.Descripcion = *in.Descripcion
	}
	rol.UpdatedAt = time.Now()
	if err := uc.rolRepo.Update(ctx, rol); err != nil {
		return nil, err
	}
	return toRolResponse(rol), nil
}

// Delete elimina el rol; sus permisos y asignaciones cascadean en la base.
func (uc *RolUseCase) Delete(ctx context.Context, id string) error {
	rol, err := uc.rolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rol == nil {
		return domain.ErrNotFound
	}
	return uc.rolRepo.Delete(ctx, id)
}

// List lista roles de una empresa, opcionalmente filtrados por sección
// (la cascada empresa → sección → rol de los formularios).
func (uc *RolUseCase) List(ctx context.Context, empresaID, seccionID string) ([]dto.RolResponse, error) {
	roles, err := uc.rolRepo.List(ctx, empresaID, seccionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, *toRolResponse(r))
	}
	return out, nil
}

func toRolResponse(r *entity.Rol) *dto.RolResponse {
	if r == nil {
		return nil
	}
	return &dto.RolResponse{
		ID:          r.ID,
		EmpresaID:   r.EmpresaID,
		SeccionID:   r.SeccionID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
