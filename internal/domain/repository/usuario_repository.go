package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByEmailAndEmpresa(ctx context.Context, email, empresaID string) (*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	ListByEmpresa(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Usuario, error)
	Delete(ctx context.Context, id string) error
}
