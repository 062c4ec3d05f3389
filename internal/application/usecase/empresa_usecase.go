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

// EmpresaUseCase aplica reglas de negocio para empresas (casos de uso).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con el puerto de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una nueva empresa. Genera ID y queda activa. Devuelve
// domain.ErrDuplicate si el nombre ya existe.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	existing, _ := uc.repo.GetByNombre(ctx, in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Direccion:  in.Direccion,
		Horario:    in.Horario,
		WebhookURL: in.WebhookURL,
		Activo:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return toEmpresaResponse(empresa), nil
}

// Update aplica los campos presentes del request. Poner Activo=false es la
// desactivación suave: las empresas nunca se borran en duro.
func (uc *EmpresaUseCase) Update(ctx context.Context, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		empresa.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		empresa.Direccion = *in.Direccion
	}
	if in.Horario != nil {
		empresa.Horario = *in.Horario
	}
	if in.WebhookURL != nil {
		empresa.WebhookURL = *in.WebhookURL
	}
	if in.Activo != nil {
		empresa.Activo = *in.Activo
	}
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// List lista empresas con paginación.
func (uc *EmpresaUseCase) List(ctx context.Context, soloActivas bool, limit, offset int) (*dto.EmpresaListResponse, error) {
	list, err := uc.repo.List(ctx, soloActivas, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:         e.ID,
		Nombre:     e.Nombre,
		Direccion:  e.Direccion,
		Horario:    e.Horario,
		WebhookURL: e.WebhookURL,
		Activo:     e.Activo,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
