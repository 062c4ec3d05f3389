package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador de persistencia para empleados.
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste un empleado nuevo.
func (r *EmpleadoRepo) Create(ctx context.Context, empleado *entity.Empleado) error {
	query := `
		INSERT INTO empleados (id, empresa_id, nombre, documento, cargo, email, telefono, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		empleado.ID, empleado.EmpresaID, empleado.Nombre, empleado.Documento,
		empleado.Cargo, empleado.Email, empleado.Telefono, empleado.Activo,
		empleado.CreatedAt, empleado.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmpleadoRepo) GetByID(ctx context.Context, id string) (*entity.Empleado, error) {
	return r.scanOne(ctx, `WHERE id = $1`, id)
}

// GetByDocumento obtiene un empleado por documento dentro de una empresa.
func (r *EmpleadoRepo) GetByDocumento(ctx context.Context, empresaID, documento string) (*entity.Empleado, error) {
	return r.scanOne(ctx, `WHERE empresa_id = $1 AND documento = $2`, empresaID, documento)
}

func (r *EmpleadoRepo) scanOne(ctx context.Context, where string, args ...any) (*entity.Empleado, error) {
	query := `
		SELECT id, empresa_id, nombre, documento, cargo, email, telefono, activo, created_at, updated_at
		FROM empleados ` + where
	var e entity.Empleado
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.EmpresaID, &e.Nombre, &e.Documento, &e.Cargo, &e.Email,
		&e.Telefono, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado existente.
func (r *EmpleadoRepo) Update(ctx context.Context, empleado *entity.Empleado) error {
	query := `
		UPDATE empleados SET nombre = $2, documento = $3, cargo = $4, email = $5, telefono = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		empleado.ID, empleado.Nombre, empleado.Documento, empleado.Cargo,
		empleado.Email, empleado.Telefono, empleado.Activo, empleado.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// ListByEmpresa lista empleados de una empresa con paginación.
func (r *EmpleadoRepo) ListByEmpresa(ctx context.Context, empresaID string, soloActivos bool, limit, offset int) ([]*entity.Empleado, error) {
	query := `
		SELECT id, empresa_id, nombre, documento, cargo, email, telefono, activo, created_at, updated_at
		FROM empleados
		WHERE empresa_id = $1 AND ($2 = false OR activo = true)
		ORDER BY nombre ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, empresaID, soloActivos, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		var e entity.Empleado
		if err := rows.Scan(&e.ID, &e.EmpresaID, &e.Nombre, &e.Documento, &e.Cargo, &e.Email, &e.Telefono, &e.Activo, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
