package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación del puerto RolRepository sobre PostgreSQL.
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador de persistencia para roles.
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// Create persiste un rol nuevo.
func (r *RolRepo) Create(ctx context.Context, rol *entity.Rol) error {
	query := `
		INSERT INTO roles (id, empresa_id, seccion_id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rol.ID, rol.EmpresaID, rol.SeccionID, rol.Nombre, rol.Descripcion,
		rol.CreatedAt, rol.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rol: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RolRepo) GetByID(ctx context.Context, id string) (*entity.Rol, error) {
	query := `
		SELECT id, empresa_id, seccion_id, nombre, descripcion, created_at, updated_at
		FROM roles WHERE id = $1`
	var rol entity.Rol
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rol.ID, &rol.EmpresaID, &rol.SeccionID, &rol.Nombre, &rol.Descripcion,
		&rol.CreatedAt, &rol.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &rol, nil
}

// Update actualiza nombre y descripción del rol.
func (r *RolRepo) Update(ctx context.Context, rol *entity.Rol) error {
	query := `
		UPDATE roles SET nombre = $2, descripcion = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, rol.ID, rol.Nombre, rol.Descripcion, rol.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update rol: %w", err)
	}
	return nil
}

// Delete elimina el rol; los FKs con ON DELETE CASCADE arrastran rol_permisos
// y usuario_roles.
func (r *RolRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rol: %w", err)
	}
	return nil
}

// List filtra por empresa y opcionalmente por sección (seccionID vacío = todas).
func (r *RolRepo) List(ctx context.Context, empresaID, seccionID string) ([]*entity.Rol, error) {
	query := `
		SELECT id, empresa_id, seccion_id, nombre, descripcion, created_at, updated_at
		FROM roles
		WHERE empresa_id = $1 AND ($2 = '' OR seccion_id = $2)
		ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query, empresaID, seccionID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.EmpresaID, &rol.SeccionID, &rol.Nombre, &rol.Descripcion, &rol.CreatedAt, &rol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

var _ repository.RolPermisoRepository = (*RolPermisoRepo)(nil)

// RolPermisoRepo persiste la matriz de permisos. Acciones viaja como JSONB.
type RolPermisoRepo struct {
	q Querier
}

// NewRolPermisoRepository construye el adaptador de la matriz de permisos.
func NewRolPermisoRepository(q Querier) *RolPermisoRepo {
	return &RolPermisoRepo{q: q}
}

// ListByRol devuelve todas las filas de la matriz de un rol.
func (r *RolPermisoRepo) ListByRol(ctx context.Context, rolID string) ([]*entity.RolPermiso, error) {
	query := `
		SELECT id, rol_id, funcionalidad_id, allow, acciones, created_at, updated_at
		FROM rol_permisos WHERE rol_id = $1`
	rows, err := r.q.Query(ctx, query, rolID)
	if err != nil {
		return nil, fmt.Errorf("list rol_permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.RolPermiso
	for rows.Next() {
		var p entity.RolPermiso
		if err := rows.Scan(&p.ID, &p.RolID, &p.FuncionalidadID, &p.Allow, &p.Acciones, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rol_permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByRolYFuncionalidad obtiene una entrada puntual de la matriz.
func (r *RolPermisoRepo) GetByRolYFuncionalidad(ctx context.Context, rolID, funcionalidadID string) (*entity.RolPermiso, error) {
	query := `
		SELECT id, rol_id, funcionalidad_id, allow, acciones, created_at, updated_at
		FROM rol_permisos WHERE rol_id = $1 AND funcionalidad_id = $2`
	var p entity.RolPermiso
	err := r.q.QueryRow(ctx, query, rolID, funcionalidadID).Scan(
		&p.ID, &p.RolID, &p.FuncionalidadID, &p.Allow, &p.Acciones, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol_permiso: %w", err)
	}
	return &p, nil
}

// CreateBatch inserta todas las filas en un solo round-trip (pgx.Batch).
func (r *RolPermisoRepo) CreateBatch(ctx context.Context, permisos []*entity.RolPermiso) error {
	if len(permisos) == 0 {
		return nil
	}
	query := `
		INSERT INTO rol_permisos (id, rol_id, funcionalidad_id, allow, acciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	batch := &pgx.Batch{}
	for _, p := range permisos {
		batch.Queue(query, p.ID, p.RolID, p.FuncionalidadID, p.Allow, p.Acciones, p.CreatedAt, p.UpdatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range permisos {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert rol_permiso batch: %w", err)
		}
	}
	return nil
}

// Update actualiza allow y acciones de una entrada existente.
func (r *RolPermisoRepo) Update(ctx context.Context, permiso *entity.RolPermiso) error {
	query := `
		UPDATE rol_permisos SET allow = $2, acciones = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, permiso.ID, permiso.Allow, permiso.Acciones, permiso.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update rol_permiso: %w", err)
	}
	return nil
}
