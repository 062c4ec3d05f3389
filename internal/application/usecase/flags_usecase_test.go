package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

type fakeFlagRepo struct {
	rows map[string]*entity.EmpresaFuncionalidad // id → fila
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{rows: map[string]*entity.EmpresaFuncionalidad{}}
}

func (f *fakeFlagRepo) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.EmpresaFuncionalidad, error) {
	var out []*entity.EmpresaFuncionalidad
	for _, r := range f.rows {
		if r.EmpresaID == empresaID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeFlagRepo) GetByEmpresaYFuncionalidad(_ context.Context, empresaID, funcionalidadID string) (*entity.EmpresaFuncionalidad, error) {
	for _, r := range f.rows {
		if r.EmpresaID == empresaID && r.FuncionalidadID == funcionalidadID {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeFlagRepo) CreateBatch(_ context.Context, flags []*entity.EmpresaFuncionalidad) error {
	for _, r := range flags {
		clone := *r
		f.rows[r.ID] = &clone
	}
	return nil
}

func (f *fakeFlagRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}

type fakeEmpresaRepo struct {
	empresas map[string]*entity.Empresa
}

func (f *fakeEmpresaRepo) Create(_ context.Context, e *entity.Empresa) error {
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaRepo) GetByID(_ context.Context, id string) (*entity.Empresa, error) {
	return f.empresas[id], nil
}

func (f *fakeEmpresaRepo) GetByNombre(_ context.Context, nombre string) (*entity.Empresa, error) {
	for _, e := range f.empresas {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpresaRepo) Update(_ context.Context, e *entity.Empresa) error {
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaRepo) List(_ context.Context, soloActivas bool, _, _ int) ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for _, e := range f.empresas {
		if !soloActivas || e.Activo {
			out = append(out, e)
		}
	}
	return out, nil
}

func armarFlagsUC() (*usecase.FlagsUseCase, *fakeFlagRepo) {
	flagRepo := newFakeFlagRepo()
	empresaRepo := &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{
		"e1": {ID: "e1", Nombre: "Acme", Activo: true, CreatedAt: time.Now()},
	}}
	return usecase.NewFlagsUseCase(flagRepo, empresaRepo), flagRepo
}

func deshabilitadas(t *testing.T, repo *fakeFlagRepo, empresaID string) []string {
	t.Helper()
	flags, err := repo.ListByEmpresa(context.Background(), empresaID)
	require.NoError(t, err)
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		assert.False(t, f.Enabled, "solo deben persistir filas deshabilitadas")
		out = append(out, f.FuncionalidadID)
	}
	return out
}

func TestFlagsSync_PersisteSoloLasDeshabilitadas(t *testing.T) {
	uc, repo := armarFlagsUC()

	out, err := uc.Sync(context.Background(), "e1", dto.SyncFlagsRequest{
		Deshabilitadas: []string{"f1", "f2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Added)
	assert.Equal(t, 0, out.Deleted)
	assert.ElementsMatch(t, []string{"f1", "f2"}, deshabilitadas(t, repo, "e1"))
}

// Rehabilitar una funcionalidad borra su fila en vez de escribir enabled=true.
func TestFlagsSync_RehabilitarBorraLaFila(t *testing.T) {
	uc, repo := armarFlagsUC()
	ctx := context.Background()

	_, err := uc.Sync(ctx, "e1", dto.SyncFlagsRequest{Deshabilitadas: []string{"f1", "f2"}})
	require.NoError(t, err)

	out, err := uc.Sync(ctx, "e1", dto.SyncFlagsRequest{Deshabilitadas: []string{"f2"}})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 1, out.Deleted)
	assert.ElementsMatch(t, []string{"f2"}, deshabilitadas(t, repo, "e1"))
}

func TestFlagsSync_Idempotente(t *testing.T) {
	uc, _ := armarFlagsUC()
	ctx := context.Background()
	req := dto.SyncFlagsRequest{Deshabilitadas: []string{"f1"}}

	_, err := uc.Sync(ctx, "e1", req)
	require.NoError(t, err)

	out, err := uc.Sync(ctx, "e1", req)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 0, out.Deleted)
}

func TestFlagsSync_ConjuntoVacioVuelveTodoAlDefault(t *testing.T) {
	uc, repo := armarFlagsUC()
	ctx := context.Background()

	_, err := uc.Sync(ctx, "e1", dto.SyncFlagsRequest{Deshabilitadas: []string{"f1", "f2", "f3"}})
	require.NoError(t, err)

	out, err := uc.Sync(ctx, "e1", dto.SyncFlagsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Deleted)
	assert.Empty(t, repo.rows)
}

func TestFlagsSync_EmpresaInexistente(t *testing.T) {
	uc, _ := armarFlagsUC()

	_, err := uc.Sync(context.Background(), "e-fantasma", dto.SyncFlagsRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
