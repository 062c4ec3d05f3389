package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.EmpresaFuncionalidadRepository = (*EmpresaFuncionalidadRepo)(nil)

// EmpresaFuncionalidadRepo persiste los feature flags por empresa. Solo
// existen filas para funcionalidades deshabilitadas.
type EmpresaFuncionalidadRepo struct {
	q Querier
}

// NewEmpresaFuncionalidadRepository construye el adaptador de flags.
func NewEmpresaFuncionalidadRepository(q Querier) *EmpresaFuncionalidadRepo {
	return &EmpresaFuncionalidadRepo{q: q}
}

// ListByEmpresa devuelve las filas persistidas de una empresa.
func (r *EmpresaFuncionalidadRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.EmpresaFuncionalidad, error) {
	query := `
		SELECT id, empresa_id, funcionalidad_id, enabled, created_at, updated_at
		FROM empresa_funcionalidades WHERE empresa_id = $1`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list empresa_funcionalidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmpresaFuncionalidad
	for rows.Next() {
		var f entity.EmpresaFuncionalidad
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.FuncionalidadID, &f.Enabled, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa_funcionalidad: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetByEmpresaYFuncionalidad obtiene la fila puntual; (nil, nil) implica
// funcionalidad habilitada (default-on).
func (r *EmpresaFuncionalidadRepo) GetByEmpresaYFuncionalidad(ctx context.Context, empresaID, funcionalidadID string) (*entity.EmpresaFuncionalidad, error) {
	query := `
		SELECT id, empresa_id, funcionalidad_id, enabled, created_at, updated_at
		FROM empresa_funcionalidades WHERE empresa_id = $1 AND funcionalidad_id = $2`
	var f entity.EmpresaFuncionalidad
	err := r.q.QueryRow(ctx, query, empresaID, funcionalidadID).Scan(
		&f.ID, &f.EmpresaID, &f.FuncionalidadID, &f.Enabled, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa_funcionalidad: %w", err)
	}
	return &f, nil
}

// CreateBatch inserta todas las filas en un solo round-trip (pgx.Batch).
func (r *EmpresaFuncionalidadRepo) CreateBatch(ctx context.Context, flags []*entity.EmpresaFuncionalidad) error {
	if len(flags) == 0 {
		return nil
	}
	query := `
		INSERT INTO empresa_funcionalidades (id, empresa_id, funcionalidad_id, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	batch := &pgx.Batch{}
	for _, f := range flags {
		batch.Queue(query, f.ID, f.EmpresaID, f.FuncionalidadID, f.Enabled, f.CreatedAt, f.UpdatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range flags {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert empresa_funcionalidad batch: %w", err)
		}
	}
	return nil
}

// DeleteByIDs borra las filas indicadas en un solo DELETE ... IN (...).
func (r *EmpresaFuncionalidadRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM empresa_funcionalidades WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete empresa_funcionalidades: %w", err)
	}
	return nil
}
