package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

func armarUsuarioUC() *usecase.UsuarioUseCase {
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"u1": {ID: "u1", EmpresaID: "e1", Email: "maria@acme.co", Nombre: "María", Rol: entity.RolPlataformaUsuario, Estado: "active"},
		"u2": {ID: "u2", EmpresaID: "e1", Email: "pedro@acme.co", Nombre: "Pedro", Rol: entity.RolPlataformaAdmin, Estado: "active"},
		"u3": {ID: "u3", EmpresaID: "e2", Email: "ana@otra.co", Nombre: "Ana", Rol: entity.RolPlataformaUsuario, Estado: "active"},
	}}
	return usecase.NewUsuarioUseCase(repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarioUC_List_SoloDeLaEmpresa(t *testing.T) {
	uc := armarUsuarioUC()

	out, err := uc.List(context.Background(), "e1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	for _, u := range out.Items {
		assert.Equal(t, "e1", u.EmpresaID)
	}
}

func TestUsuarioUC_GetByID_OtraEmpresaNoLoVe(t *testing.T) {
	uc := armarUsuarioUC()

	out, err := uc.GetByID(context.Background(), "e1", "u3")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUsuarioUC_Update_CambiaEstadoYRol(t *testing.T) {
	uc := armarUsuarioUC()
	estado := "suspended"
	rol := entity.RolPlataformaSoporte

	out, err := uc.Update(context.Background(), "e1", "u1", dto.UpdateUsuarioRequest{Estado: &estado, Rol: &rol})
	require.NoError(t, err)
	assert.Equal(t, "suspended", out.Estado)
	assert.Equal(t, entity.RolPlataformaSoporte, out.Rol)
	assert.Equal(t, "María", out.Nombre) // los campos omitidos no cambian
}

func TestUsuarioUC_Update_OtraEmpresaEsNotFound(t *testing.T) {
	uc := armarUsuarioUC()
	estado := "inactive"

	_, err := uc.Update(context.Background(), "e1", "u3", dto.UpdateUsuarioRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUsuarioUC_Delete(t *testing.T) {
	uc := armarUsuarioUC()

	require.NoError(t, uc.Delete(context.Background(), "e1", "u2"))

	out, err := uc.GetByID(context.Background(), "e1", "u2")
	require.NoError(t, err)
	assert.Nil(t, out)

	// borrar un usuario de otra empresa no está permitido
	assert.ErrorIs(t, uc.Delete(context.Background(), "e1", "u3"), domain.ErrUserNotFound)
}
