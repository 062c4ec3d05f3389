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

// EmpleadoUseCase registro de personal por empresa.
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso de empleados.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// Create registra un empleado; el documento es único por empresa.
func (uc *EmpleadoUseCase) Create(ctx context.Context, empresaID string, in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	existing, _ := uc.repo.GetByDocumento(ctx, empresaID, in.Documento)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empleado := &entity.Empleado{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Cargo:     in.Cargo,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, empleado); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// GetByID obtiene un empleado; solo visible dentro de su empresa.
func (uc *EmpleadoUseCase) GetByID(ctx context.Context, empresaID, id string) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empleado == nil || empleado.EmpresaID != empresaID {
		return nil, nil
	}
	return toEmpleadoResponse(empleado), nil
}

// Update actualización parcial; Activo=false es la baja suave.
func (uc *EmpleadoUseCase) Update(ctx context.Context, empresaID, id string, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empleado == nil || empleado.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		empleado.Nombre = *in.Nombre
	}
	if in.Cargo != nil {
		empleado.Cargo = *in.Cargo
	}
	if in.Email != nil {
		empleado.Email = *in.Email
	}
	if in.Telefono != nil {
		empleado.Telefono = *in.Telefono
	}
	if in.Activo != nil {
		empleado.Activo = *in.Activo
	}
	empleado.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, empleado); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// List lista empleados de la empresa con paginación.
func (uc *EmpleadoUseCase) List(ctx context.Context, empresaID string, soloActivos bool, limit, offset int) (*dto.EmpleadoListResponse, error) {
	list, err := uc.repo.ListByEmpresa(ctx, empresaID, soloActivos, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpleadoResponse(e))
	}
	return &dto.EmpleadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleadoResponse{
		ID:        e.ID,
		EmpresaID: e.EmpresaID,
		Nombre:    e.Nombre,
		Documento: e.Documento,
		Cargo:     e.Cargo,
		Email:     e.Email,
		Telefono:  e.Telefono,
		Activo:    e.Activo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
