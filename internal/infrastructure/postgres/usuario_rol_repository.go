package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UsuarioRolRepository = (*UsuarioRolRepo)(nil)

// UsuarioRolRepo persiste las asignaciones usuario→rol por sección (usable
// con pool o tx; la sincronización corre dentro de una transacción).
type UsuarioRolRepo struct {
	q Querier
}

// NewUsuarioRolRepository construye el adaptador de asignaciones.
func NewUsuarioRolRepository(q Querier) *UsuarioRolRepo {
	return &UsuarioRolRepo{q: q}
}

// ListByUsuario devuelve las asignaciones del usuario en una empresa.
func (r *UsuarioRolRepo) ListByUsuario(ctx context.Context, empresaID, userID string) ([]*entity.UsuarioRol, error) {
	query := `
		SELECT id, empresa_id, user_id, seccion_id, rol_id, created_at
		FROM usuario_roles WHERE empresa_id = $1 AND user_id = $2`
	return r.list(ctx, query, empresaID, userID)
}

// ListByEmpresa devuelve todas las asignaciones de una empresa.
func (r *UsuarioRolRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.UsuarioRol, error) {
	query := `
		SELECT id, empresa_id, user_id, seccion_id, rol_id, created_at
		FROM usuario_roles WHERE empresa_id = $1`
	return r.list(ctx, query, empresaID)
}

func (r *UsuarioRolRepo) list(ctx context.Context, query string, args ...any) ([]*entity.UsuarioRol, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuario_roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsuarioRol
	for rows.Next() {
		var a entity.UsuarioRol
		if err := rows.Scan(&a.ID, &a.EmpresaID, &a.UserID, &a.SeccionID, &a.RolID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario_rol: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByUsuarioYSeccion obtiene la asignación vigente del usuario en una
// sección; (nil, nil) si no tiene rol ahí.
func (r *UsuarioRolRepo) GetByUsuarioYSeccion(ctx context.Context, empresaID, userID, seccionID string) (*entity.UsuarioRol, error) {
	query := `
		SELECT id, empresa_id, user_id, seccion_id, rol_id, created_at
		FROM usuario_roles WHERE empresa_id = $1 AND user_id = $2 AND seccion_id = $3`
	var a entity.UsuarioRol
	err := r.q.QueryRow(ctx, query, empresaID, userID, seccionID).Scan(
		&a.ID, &a.EmpresaID, &a.UserID, &a.SeccionID, &a.RolID, &a.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario_rol: %w", err)
	}
	return &a, nil
}

// CreateBatch inserta todas las filas en un solo round-trip (pgx.Batch).
// El índice único (empresa_id, user_id, seccion_id) respalda el invariante
// de un rol por sección.
func (r *UsuarioRolRepo) CreateBatch(ctx context.Context, asignaciones []*entity.UsuarioRol) error {
	if len(asignaciones) == 0 {
		return nil
	}
	query := `
		INSERT INTO usuario_roles (id, empresa_id, user_id, seccion_id, rol_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	batch := &pgx.Batch{}
	for _, a := range asignaciones {
		batch.Queue(query, a.ID, a.EmpresaID, a.UserID, a.SeccionID, a.RolID, a.CreatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range asignaciones {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("insert usuario_rol batch: %w", err)
		}
	}
	return nil
}

// DeleteByIDs borra las filas indicadas en un solo DELETE ... IN (...).
func (r *UsuarioRolRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM usuario_roles WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete usuario_roles: %w", err)
	}
	return nil
}
