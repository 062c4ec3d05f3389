package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios dentro de una empresa.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// GetByID obtiene un usuario; solo visible dentro de su empresa.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, empresaID, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.EmpresaID != empresaID {
		return nil, nil
	}
	return usuarioToResponse(usuario), nil
}

// Update actualización parcial de nombre, rol de plataforma o estado.
func (uc *UsuarioUseCase) Update(ctx context.Context, empresaID, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.EmpresaID != empresaID {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		usuario.Rol = *in.Rol
	}
	if in.Estado != nil {
		usuario.Estado = *in.Estado
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

// Delete elimina un usuario de la empresa.
func (uc *UsuarioUseCase) Delete(ctx context.Context, empresaID, id string) error {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil || usuario.EmpresaID != empresaID {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista usuarios de la empresa con paginación.
func (uc *UsuarioUseCase) List(ctx context.Context, empresaID string, limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.ListByEmpresa(ctx, empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *usuarioToResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		EmpresaID: u.EmpresaID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
