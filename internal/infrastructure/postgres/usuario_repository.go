package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, empresa_id, email, password_hash, nombre, rol, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.EmpresaID, usuario.Email, usuario.PasswordHash,
		usuario.Nombre, usuario.Rol, usuario.Estado, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (cualquier empresa).
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `WHERE email = $1 LIMIT 1`, email)
}

// GetByEmailAndEmpresa obtiene un usuario por email dentro de una empresa.
func (r *UsuarioRepo) GetByEmailAndEmpresa(ctx context.Context, email, empresaID string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `WHERE email = $1 AND empresa_id = $2`, email, empresaID)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, where string, args ...any) (*entity.Usuario, error) {
	query := `
		SELECT id, empresa_id, email, password_hash, nombre, rol, estado, created_at, updated_at
		FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, password_hash = $3, nombre = $4, rol = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Email, usuario.PasswordHash, usuario.Nombre,
		usuario.Rol, usuario.Estado, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListByEmpresa lista usuarios de una empresa con paginación.
func (r *UsuarioRepo) ListByEmpresa(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT id, empresa_id, email, password_hash, nombre, rol, estado, created_at, updated_at
		FROM usuarios WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
