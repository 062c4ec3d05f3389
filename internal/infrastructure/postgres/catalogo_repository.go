package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación del puerto CatalogoRepository sobre PostgreSQL.
// El catálogo es global (sin empresa_id): secciones, módulos y funcionalidades
// se listan planos y el árbol se arma en memoria.
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador del catálogo.
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

// ─── Secciones ───────────────────────────────────────────────────────────────

// CreateSeccion persiste una sección nueva.
func (r *CatalogoRepo) CreateSeccion(ctx context.Context, s *entity.Seccion) error {
	query := `
		INSERT INTO secciones (id, codigo, nombre, descripcion, orden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Codigo, s.Nombre, s.Descripcion, s.Orden, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seccion: %w", err)
	}
	return nil
}

// UpdateSeccion actualiza una sección existente.
func (r *CatalogoRepo) UpdateSeccion(ctx context.Context, s *entity.Seccion) error {
	query := `
		UPDATE secciones SET codigo = $2, nombre = $3, descripcion = $4, orden = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Codigo, s.Nombre, s.Descripcion, s.Orden, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update seccion: %w", err)
	}
	return nil
}

// GetSeccionByID obtiene una sección por ID.
func (r *CatalogoRepo) GetSeccionByID(ctx context.Context, id string) (*entity.Seccion, error) {
	return r.getSeccion(ctx, `WHERE id = $1`, id)
}

// GetSeccionByCodigo obtiene una sección por su slug.
func (r *CatalogoRepo) GetSeccionByCodigo(ctx context.Context, codigo string) (*entity.Seccion, error) {
	return r.getSeccion(ctx, `WHERE codigo = $1`, codigo)
}

func (r *CatalogoRepo) getSeccion(ctx context.Context, where string, args ...any) (*entity.Seccion, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, orden, created_at, updated_at
		FROM secciones ` + where
	var s entity.Seccion
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.Codigo, &s.Nombre, &s.Descripcion, &s.Orden, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seccion: %w", err)
	}
	return &s, nil
}

// ListSecciones devuelve todas las secciones por orden de presentación.
func (r *CatalogoRepo) ListSecciones(ctx context.Context) ([]entity.Seccion, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, orden, created_at, updated_at
		FROM secciones ORDER BY orden ASC, nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list secciones: %w", err)
	}
	defer rows.Close()
	var list []entity.Seccion
	for rows.Next() {
		var s entity.Seccion
		if err := rows.Scan(&s.ID, &s.Codigo, &s.Nombre, &s.Descripcion, &s.Orden, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seccion: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ─── Módulos ─────────────────────────────────────────────────────────────────

// CreateModulo persiste un módulo nuevo.
func (r *CatalogoRepo) CreateModulo(ctx context.Context, m *entity.Modulo) error {
	query := `
		INSERT INTO modulos (id, seccion_id, codigo, nombre, descripcion, orden, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, m.ID, m.SeccionID, m.Codigo, m.Nombre, m.Descripcion, m.Orden, m.Activo, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert modulo: %w", err)
	}
	return nil
}

// UpdateModulo actualiza un módulo existente.
func (r *CatalogoRepo) UpdateModulo(ctx context.Context, m *entity.Modulo) error {
	query := `
		UPDATE modulos SET seccion_id = $2, codigo = $3, nombre = $4, descripcion = $5, orden = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, m.ID, m.SeccionID, m.Codigo, m.Nombre, m.Descripcion, m.Orden, m.Activo, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update modulo: %w", err)
	}
	return nil
}

// GetModuloByID obtiene un módulo por ID.
func (r *CatalogoRepo) GetModuloByID(ctx context.Context, id string) (*entity.Modulo, error) {
	query := `
		SELECT id, seccion_id, codigo, nombre, descripcion, orden, activo, created_at, updated_at
		FROM modulos WHERE id = $1`
	var m entity.Modulo
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.SeccionID, &m.Codigo, &m.Nombre, &m.Descripcion, &m.Orden, &m.Activo, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modulo: %w", err)
	}
	return &m, nil
}

// ListModulos devuelve todos los módulos por orden de presentación.
func (r *CatalogoRepo) ListModulos(ctx context.Context) ([]entity.Modulo, error) {
	query := `
		SELECT id, seccion_id, codigo, nombre, descripcion, orden, activo, created_at, updated_at
		FROM modulos ORDER BY orden ASC, nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list modulos: %w", err)
	}
	defer rows.Close()
	var list []entity.Modulo
	for rows.Next() {
		var m entity.Modulo
		if err := rows.Scan(&m.ID, &m.SeccionID, &m.Codigo, &m.Nombre, &m.Descripcion, &m.Orden, &m.Activo, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan modulo: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ─── Funcionalidades ─────────────────────────────────────────────────────────

// CreateFuncionalidad persiste una funcionalidad nueva. Acciones se guarda
// como JSONB.
func (r *CatalogoRepo) CreateFuncionalidad(ctx context.Context, f *entity.Funcionalidad) error {
	query := `
		INSERT INTO funcionalidades (id, modulo_id, codigo, nombre, descripcion, acciones, orden, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, f.ID, f.ModuloID, f.Codigo, f.Nombre, f.Descripcion, f.Acciones, f.Orden, f.Activo, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert funcionalidad: %w", err)
	}
	return nil
}

// UpdateFuncionalidad actualiza una funcionalidad existente.
func (r *CatalogoRepo) UpdateFuncionalidad(ctx context.Context, f *entity.Funcionalidad) error {
	query := `
		UPDATE funcionalidades SET modulo_id = $2, codigo = $3, nombre = $4, descripcion = $5, acciones = $6, orden = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.ModuloID, f.Codigo, f.Nombre, f.Descripcion, f.Acciones, f.Orden, f.Activo, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update funcionalidad: %w", err)
	}
	return nil
}

// GetFuncionalidadByID obtiene una funcionalidad por ID.
func (r *CatalogoRepo) GetFuncionalidadByID(ctx context.Context, id string) (*entity.Funcionalidad, error) {
	return r.getFuncionalidad(ctx, `WHERE id = $1`, id)
}

// GetFuncionalidadByCodigo obtiene una funcionalidad por su slug.
func (r *CatalogoRepo) GetFuncionalidadByCodigo(ctx context.Context, codigo string) (*entity.Funcionalidad, error) {
	return r.getFuncionalidad(ctx, `WHERE codigo = $1`, codigo)
}

func (r *CatalogoRepo) getFuncionalidad(ctx context.Context, where string, args ...any) (*entity.Funcionalidad, error) {
	query := `
		SELECT id, modulo_id, codigo, nombre, descripcion, acciones, orden, activo, created_at, updated_at
		FROM funcionalidades ` + where
	var f entity.Funcionalidad
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.ModuloID, &f.Codigo, &f.Nombre, &f.Descripcion, &f.Acciones, &f.Orden, &f.Activo, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionalidad: %w", err)
	}
	return &f, nil
}

// ListFuncionalidades devuelve todas las funcionalidades por orden de presentación.
func (r *CatalogoRepo) ListFuncionalidades(ctx context.Context) ([]entity.Funcionalidad, error) {
	query := `
		SELECT id, modulo_id, codigo, nombre, descripcion, acciones, orden, activo, created_at, updated_at
		FROM funcionalidades ORDER BY orden ASC, nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list funcionalidades: %w", err)
	}
	defer rows.Close()
	var list []entity.Funcionalidad
	for rows.Next() {
		var f entity.Funcionalidad
		if err := rows.Scan(&f.ID, &f.ModuloID, &f.Codigo, &f.Nombre, &f.Descripcion, &f.Acciones, &f.Orden, &f.Activo, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan funcionalidad: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// SeccionDeFuncionalidad devuelve el id de la sección dueña de la
// funcionalidad (vía su módulo); "" si la funcionalidad no existe.
func (r *CatalogoRepo) SeccionDeFuncionalidad(ctx context.Context, funcionalidadID string) (string, error) {
	query := `
		SELECT m.seccion_id
		FROM funcionalidades f
		JOIN modulos m ON m.id = f.modulo_id
		WHERE f.id = $1`
	var seccionID string
	err := r.q.QueryRow(ctx, query, funcionalidadID).Scan(&seccionID)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("seccion de funcionalidad: %w", err)
	}
	return seccionID, nil
}
