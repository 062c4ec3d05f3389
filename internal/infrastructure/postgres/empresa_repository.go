package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(ctx context.Context, empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nombre, direccion, horario, webhook_url, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		empresa.ID, empresa.Nombre, empresa.Direccion, empresa.Horario,
		empresa.WebhookURL, empresa.Activo, empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.Empresa, error) {
	query := `
		SELECT id, nombre, direccion, horario, webhook_url, activo, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Nombre, &e.Direccion, &e.Horario, &e.WebhookURL, &e.Activo,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// GetByNombre obtiene una empresa por nombre exacto.
func (r *EmpresaRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Empresa, error) {
	query := `
		SELECT id, nombre, direccion, horario, webhook_url, activo, created_at, updated_at
		FROM empresas WHERE nombre = $1`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, nombre).Scan(
		&e.ID, &e.Nombre, &e.Direccion, &e.Horario, &e.WebhookURL, &e.Activo,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by nombre: %w", err)
	}
	return &e, nil
}

// Update actualiza una empresa existente.
func (r *EmpresaRepo) Update(ctx context.Context, empresa *entity.Empresa) error {
	query := `
		UPDATE empresas SET nombre = $2, direccion = $3, horario = $4, webhook_url = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		empresa.ID, empresa.Nombre, empresa.Direccion, empresa.Horario,
		empresa.WebhookURL, empresa.Activo, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación; soloActivas filtra las desactivadas.
func (r *EmpresaRepo) List(ctx context.Context, soloActivas bool, limit, offset int) ([]*entity.Empresa, error) {
	query := `
		SELECT id, nombre, direccion, horario, webhook_url, activo, created_at, updated_at
		FROM empresas
		WHERE ($1 = false OR activo = true)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, soloActivas, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Direccion, &e.Horario, &e.WebhookURL, &e.Activo, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
