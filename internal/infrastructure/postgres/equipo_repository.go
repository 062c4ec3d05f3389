package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL.
// Marcas y modelos son globales; los equipos pertenecen a una empresa.
// La columna costo es NUMERIC y viaja como shopspring/decimal (codec
// registrado en el pool).
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador del inventario de equipos.
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

// ─── Marcas ──────────────────────────────────────────────────────────────────

// CreateMarca persiste una marca nueva.
func (r *EquipoRepo) CreateMarca(ctx context.Context, marca *entity.Marca) error {
	query := `
		INSERT INTO marcas (id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, marca.ID, marca.Nombre, marca.CreatedAt, marca.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

// GetMarcaByNombre obtiene una marca por nombre exacto.
func (r *EquipoRepo) GetMarcaByNombre(ctx context.Context, nombre string) (*entity.Marca, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM marcas WHERE nombre = $1`
	var m entity.Marca
	err := r.q.QueryRow(ctx, query, nombre).Scan(&m.ID, &m.Nombre, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca: %w", err)
	}
	return &m, nil
}

// ListMarcas devuelve todas las marcas ordenadas por nombre.
func (r *EquipoRepo) ListMarcas(ctx context.Context) ([]entity.Marca, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, created_at, updated_at FROM marcas ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	var list []entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ─── Modelos ─────────────────────────────────────────────────────────────────

// CreateModelo persiste un modelo nuevo.
func (r *EquipoRepo) CreateModelo(ctx context.Context, modelo *entity.Modelo) error {
	query := `
		INSERT INTO modelos_equipo (id, marca_id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, modelo.ID, modelo.MarcaID, modelo.Nombre, modelo.CreatedAt, modelo.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert modelo: %w", err)
	}
	return nil
}

// GetModeloByID obtiene un modelo por ID.
func (r *EquipoRepo) GetModeloByID(ctx context.Context, id string) (*entity.Modelo, error) {
	query := `SELECT id, marca_id, nombre, created_at, updated_at FROM modelos_equipo WHERE id = $1`
	var m entity.Modelo
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.MarcaID, &m.Nombre, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modelo: %w", err)
	}
	return &m, nil
}

// ListModelosByMarca soporta la cascada marca → modelo de los formularios.
func (r *EquipoRepo) ListModelosByMarca(ctx context.Context, marcaID string) ([]entity.Modelo, error) {
	query := `
		SELECT id, marca_id, nombre, created_at, updated_at
		FROM modelos_equipo WHERE marca_id = $1 ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query, marcaID)
	if err != nil {
		return nil, fmt.Errorf("list modelos: %w", err)
	}
	defer rows.Close()
	var list []entity.Modelo
	for rows.Next() {
		var m entity.Modelo
		if err := rows.Scan(&m.ID, &m.MarcaID, &m.Nombre, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan modelo: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ─── Equipos ─────────────────────────────────────────────────────────────────

// CreateEquipo persiste un equipo nuevo.
func (r *EquipoRepo) CreateEquipo(ctx context.Context, equipo *entity.Equipo) error {
	query := `
		INSERT INTO equipos (id, empresa_id, modelo_id, serial, estado, costo, fecha_compra, observacion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		equipo.ID, equipo.EmpresaID, equipo.ModeloID, equipo.Serial, equipo.Estado,
		equipo.Costo, equipo.FechaCompra, equipo.Observacion, equipo.Activo,
		equipo.CreatedAt, equipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetEquipoByID obtiene un equipo por ID.
func (r *EquipoRepo) GetEquipoByID(ctx context.Context, id string) (*entity.Equipo, error) {
	return r.scanEquipo(ctx, `WHERE id = $1`, id)
}

// GetEquipoBySerial obtiene un equipo por serial dentro de una empresa.
func (r *EquipoRepo) GetEquipoBySerial(ctx context.Context, empresaID, serial string) (*entity.Equipo, error) {
	return r.scanEquipo(ctx, `WHERE empresa_id = $1 AND serial = $2`, empresaID, serial)
}

func (r *EquipoRepo) scanEquipo(ctx context.Context, where string, args ...any) (*entity.Equipo, error) {
	query := `
		SELECT id, empresa_id, modelo_id, serial, estado, costo, fecha_compra, observacion, activo, created_at, updated_at
		FROM equipos ` + where
	var e entity.Equipo
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.EmpresaID, &e.ModeloID, &e.Serial, &e.Estado, &e.Costo,
		&e.FechaCompra, &e.Observacion, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return &e, nil
}

// UpdateEquipo actualiza un equipo existente.
func (r *EquipoRepo) UpdateEquipo(ctx context.Context, equipo *entity.Equipo) error {
	query := `
		UPDATE equipos SET modelo_id = $2, serial = $3, estado = $4, costo = $5, fecha_compra = $6, observacion = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		equipo.ID, equipo.ModeloID, equipo.Serial, equipo.Estado, equipo.Costo,
		equipo.FechaCompra, equipo.Observacion, equipo.Activo, equipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update equipo: %w", err)
	}
	return nil
}

// ListEquiposByEmpresa lista equipos de una empresa con paginación.
func (r *EquipoRepo) ListEquiposByEmpresa(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Equipo, error) {
	query := `
		SELECT id, empresa_id, modelo_id, serial, estado, costo, fecha_compra, observacion, activo, created_at, updated_at
		FROM equipos WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipo
	for rows.Next() {
		var e entity.Equipo
		if err := rows.Scan(&e.ID, &e.EmpresaID, &e.ModeloID, &e.Serial, &e.Estado, &e.Costo, &e.FechaCompra, &e.Observacion, &e.Activo, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
