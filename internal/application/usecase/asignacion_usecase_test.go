package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAsignacionRepo struct {
	rows map[string]*entity.UsuarioRol // id → fila
}

func newFakeAsignacionRepo() *fakeAsignacionRepo {
	return &fakeAsignacionRepo{rows: map[string]*entity.UsuarioRol{}}
}

func (f *fakeAsignacionRepo) ListByUsuario(_ context.Context, empresaID, userID string) ([]*entity.UsuarioRol, error) {
	var out []*entity.UsuarioRol
	for _, a := range f.rows {
		if a.EmpresaID == empresaID && a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeAsignacionRepo) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.UsuarioRol, error) {
	var out []*entity.UsuarioRol
	for _, a := range f.rows {
		if a.EmpresaID == empresaID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeAsignacionRepo) GetByUsuarioYSeccion(_ context.Context, empresaID, userID, seccionID string) (*entity.UsuarioRol, error) {
	for _, a := range f.rows {
		if a.EmpresaID == empresaID && a.UserID == userID && a.SeccionID == seccionID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAsignacionRepo) CreateBatch(_ context.Context, asignaciones []*entity.UsuarioRol) error {
	for _, a := range asignaciones {
		clone := *a
		f.rows[a.ID] = &clone
	}
	return nil
}

func (f *fakeAsignacionRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}

// fakeTxRunner ejecuta el callback directo contra el mismo repo, sin
// transacción real. Con fallar=true simula un rollback: descarta todo.
type fakeTxRunner struct {
	repo   *fakeAsignacionRepo
	fallar bool
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repo repository.UsuarioRolRepository) error) error {
	if f.fallar {
		return errors.New("tx: rollback simulado")
	}
	return fn(f.repo)
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}

func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByEmailAndEmpresa(_ context.Context, email, empresaID string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email && u.EmpresaID == empresaID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) ListByEmpresa(_ context.Context, empresaID string, _, _ int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.usuarios {
		if u.EmpresaID == empresaID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(f.usuarios, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

func armarAsignacionUC(t *testing.T) (*usecase.AsignacionUseCase, *fakeAsignacionRepo) {
	t.Helper()
	asigRepo := newFakeAsignacionRepo()
	usuarioRepo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"u1": {ID: "u1", EmpresaID: "e1", Email: "maria@acme.co", Estado: "active"},
	}}
	rolRepo := &fakeRolRepo{roles: map[string]*entity.Rol{
		"r-ventas-sup":  {ID: "r-ventas-sup", EmpresaID: "e1", SeccionID: "s-ventas", Nombre: "Supervisor", CreatedAt: time.Now()},
		"r-ventas-ope":  {ID: "r-ventas-ope", EmpresaID: "e1", SeccionID: "s-ventas", Nombre: "Operario", CreatedAt: time.Now()},
		"r-bodega-jefe": {ID: "r-bodega-jefe", EmpresaID: "e1", SeccionID: "s-bodega", Nombre: "Jefe", CreatedAt: time.Now()},
		"r-ajena":       {ID: "r-ajena", EmpresaID: "e2", SeccionID: "s-ventas", Nombre: "Intruso", CreatedAt: time.Now()},
	}}
	uc := usecase.NewAsignacionUseCase(asigRepo, usuarioRepo, rolRepo, &fakeTxRunner{repo: asigRepo})
	return uc, asigRepo
}

func rolesPorSeccion(t *testing.T, repo *fakeAsignacionRepo, empresaID, userID string) map[string]string {
	t.Helper()
	vigentes, err := repo.ListByUsuario(context.Background(), empresaID, userID)
	require.NoError(t, err)
	out := map[string]string{}
	for _, a := range vigentes {
		require.NotContains(t, out, a.SeccionID, "más de un rol en la misma sección")
		out[a.SeccionID] = a.RolID
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Sync del conjunto deseado
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignacionSync_AltasYBajasPorDiferencia(t *testing.T) {
	uc, repo := armarAsignacionUC(t)
	ctx := context.Background()

	out, err := uc.Sync(ctx, "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-sup"},
		{SeccionID: "s-bodega", RolID: "r-bodega-jefe"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Added)
	assert.Equal(t, 0, out.Deleted)

	// Cambiar el rol de ventas y soltar bodega.
	out, err = uc.Sync(ctx, "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-ope"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 2, out.Deleted)

	vigentes := rolesPorSeccion(t, repo, "e1", "u1")
	assert.Equal(t, map[string]string{"s-ventas": "r-ventas-ope"}, vigentes)
}

// Reaplicar el mismo conjunto deseado no produce escrituras.
func TestAsignacionSync_Idempotente(t *testing.T) {
	uc, _ := armarAsignacionUC(t)
	ctx := context.Background()
	req := dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-sup"},
	}}

	_, err := uc.Sync(ctx, "e1", "u1", req)
	require.NoError(t, err)

	out, err := uc.Sync(ctx, "e1", "u1", req)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 0, out.Deleted)
}

func TestAsignacionSync_RechazaDosRolesEnLaMismaSeccion(t *testing.T) {
	uc, _ := armarAsignacionUC(t)

	_, err := uc.Sync(context.Background(), "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-sup"},
		{SeccionID: "s-ventas", RolID: "r-ventas-ope"},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsignacionSync_RechazaRolDeOtraEmpresa(t *testing.T) {
	uc, _ := armarAsignacionUC(t)

	_, err := uc.Sync(context.Background(), "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ajena"},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsignacionSync_RechazaRolFueraDeSuSeccion(t *testing.T) {
	uc, _ := armarAsignacionUC(t)

	// r-bodega-jefe pertenece a s-bodega, no a s-ventas.
	_, err := uc.Sync(context.Background(), "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-bodega-jefe"},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsignacionSync_UsuarioInexistente(t *testing.T) {
	uc, _ := armarAsignacionUC(t)

	_, err := uc.Sync(context.Background(), "e1", "u-fantasma", dto.SyncAsignacionesRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El conjunto deseado vacío desasigna todo.
func TestAsignacionSync_ConjuntoVacioDesasignaTodo(t *testing.T) {
	uc, repo := armarAsignacionUC(t)
	ctx := context.Background()

	_, err := uc.Sync(ctx, "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-sup"},
		{SeccionID: "s-bodega", RolID: "r-bodega-jefe"},
	}})
	require.NoError(t, err)

	out, err := uc.Sync(ctx, "e1", "u1", dto.SyncAsignacionesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Deleted)
	assert.Empty(t, rolesPorSeccion(t, repo, "e1", "u1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación puntual con reemplazo
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_ReemplazaElRolPrevioDeLaSeccion(t *testing.T) {
	uc, repo := armarAsignacionUC(t)
	ctx := context.Background()

	_, err := uc.Asignar(ctx, "e1", "u1", "r-ventas-sup")
	require.NoError(t, err)

	out, err := uc.Asignar(ctx, "e1", "u1", "r-ventas-ope")
	require.NoError(t, err)
	assert.Equal(t, "s-ventas", out.SeccionID)
	assert.Equal(t, "r-ventas-ope", out.RolID)

	vigentes := rolesPorSeccion(t, repo, "e1", "u1")
	assert.Equal(t, "r-ventas-ope", vigentes["s-ventas"], "la asignación previa debe quedar reemplazada")
	assert.Len(t, vigentes, 1)
}

func TestAsignar_MismoRolNoEscribe(t *testing.T) {
	uc, repo := armarAsignacionUC(t)
	ctx := context.Background()

	primera, err := uc.Asignar(ctx, "e1", "u1", "r-ventas-sup")
	require.NoError(t, err)

	segunda, err := uc.Asignar(ctx, "e1", "u1", "r-ventas-sup")
	require.NoError(t, err)
	assert.Equal(t, primera.ID, segunda.ID, "reasignar el mismo rol debe conservar la fila")
	assert.Len(t, repo.rows, 1)
}

func TestAsignar_NoTocaOtrasSecciones(t *testing.T) {
	uc, repo := armarAsignacionUC(t)
	ctx := context.Background()

	_, err := uc.Asignar(ctx, "e1", "u1", "r-bodega-jefe")
	require.NoError(t, err)
	_, err = uc.Asignar(ctx, "e1", "u1", "r-ventas-sup")
	require.NoError(t, err)

	vigentes := rolesPorSeccion(t, repo, "e1", "u1")
	assert.Equal(t, "r-bodega-jefe", vigentes["s-bodega"])
	assert.Equal(t, "r-ventas-sup", vigentes["s-ventas"])
}

// Un fallo de la transacción no deja escrituras parciales.
func TestAsignacionSync_FalloDeTransaccionNoDejaParciales(t *testing.T) {
	asigRepo := newFakeAsignacionRepo()
	usuarioRepo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"u1": {ID: "u1", EmpresaID: "e1", Email: "maria@acme.co", Estado: "active"},
	}}
	rolRepo := &fakeRolRepo{roles: map[string]*entity.Rol{
		"r-ventas-sup": {ID: "r-ventas-sup", EmpresaID: "e1", SeccionID: "s-ventas", Nombre: "Supervisor", CreatedAt: time.Now()},
	}}
	uc := usecase.NewAsignacionUseCase(asigRepo, usuarioRepo, rolRepo, &fakeTxRunner{repo: asigRepo, fallar: true})

	_, err := uc.Sync(context.Background(), "e1", "u1", dto.SyncAsignacionesRequest{Asignaciones: []dto.AsignacionEntry{
		{SeccionID: "s-ventas", RolID: "r-ventas-sup"},
	}})
	require.Error(t, err)
	assert.Empty(t, asigRepo.rows)
}
