package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain/catalog"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: catálogo pequeño con filas desordenadas y huérfanos a propósito.
// ──────────────────────────────────────────────────────────────────────────────

func fixtureCatalogo() ([]entity.Seccion, []entity.Modulo, []entity.Funcionalidad) {
	secciones := []entity.Seccion{
		{ID: "s2", Codigo: "inventario", Nombre: "Inventario", Orden: 2},
		{ID: "s1", Codigo: "admin", Nombre: "Administración", Orden: 1},
		{ID: "s3", Codigo: "soporte", Nombre: "Soporte", Orden: 3},
	}
	modulos := []entity.Modulo{
		{ID: "m2", SeccionID: "s1", Codigo: "usuarios", Nombre: "Usuarios", Orden: 2},
		{ID: "m1", SeccionID: "s1", Codigo: "empresas", Nombre: "Empresas", Orden: 1},
		{ID: "m3", SeccionID: "s2", Codigo: "equipos", Nombre: "Equipos", Orden: 1},
		// huérfano: sección inexistente
		{ID: "mx", SeccionID: "s-borrada", Codigo: "fantasma", Nombre: "Fantasma", Orden: 1},
	}
	funcionalidades := []entity.Funcionalidad{
		{ID: "f2", ModuloID: "m1", Codigo: "empresas-editar", Nombre: "Editar empresas", Orden: 2},
		{ID: "f1", ModuloID: "m1", Codigo: "empresas-ver", Nombre: "Ver empresas", Orden: 1},
		{ID: "f3", ModuloID: "m3", Codigo: "equipos-ver", Nombre: "Ver equipos", Orden: 1},
		// huérfana: módulo inexistente
		{ID: "fx", ModuloID: "m-borrado", Codigo: "huerfana", Nombre: "Huérfana", Orden: 1},
	}
	return secciones, modulos, funcionalidades
}

// El árbol queda ordenado por (orden, nombre) en cada nivel.
func TestBuildTree_OrdenaPorOrdenYNombre(t *testing.T) {
	secciones, modulos, funcionalidades := fixtureCatalogo()
	tree := catalog.BuildTree(secciones, modulos, funcionalidades)

	require.Len(t, tree, 3)
	assert.Equal(t, "s1", tree[0].Seccion.ID)
	assert.Equal(t, "s2", tree[1].Seccion.ID)
	assert.Equal(t, "s3", tree[2].Seccion.ID)

	require.Len(t, tree[0].Modulos, 2)
	assert.Equal(t, "m1", tree[0].Modulos[0].Modulo.ID, "Empresas (orden 1) va antes que Usuarios (orden 2)")

	fs := tree[0].Modulos[0].Funcionalidades
	require.Len(t, fs, 2)
	assert.Equal(t, "f1", fs[0].ID)
	assert.Equal(t, "f2", fs[1].ID)
}

// Con el mismo orden numérico desempata el nombre lexicográfico.
func TestBuildTree_DesempataPorNombre(t *testing.T) {
	secciones := []entity.Seccion{{ID: "s1", Nombre: "Única", Orden: 1}}
	modulos := []entity.Modulo{
		{ID: "mb", SeccionID: "s1", Nombre: "Bodega", Orden: 5},
		{ID: "ma", SeccionID: "s1", Nombre: "Almacén", Orden: 5},
	}
	tree := catalog.BuildTree(secciones, modulos, nil)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Modulos, 2)
	assert.Equal(t, "ma", tree[0].Modulos[0].Modulo.ID)
	assert.Equal(t, "mb", tree[0].Modulos[1].Modulo.ID)
}

// Propiedad de fidelidad: todo módulo del árbol apunta a su sección padre y
// toda funcionalidad a su módulo padre; los huérfanos nunca aparecen.
func TestBuildTree_SinHuerfanos(t *testing.T) {
	secciones, modulos, funcionalidades := fixtureCatalogo()
	tree := catalog.BuildTree(secciones, modulos, funcionalidades)

	for _, s := range tree {
		for _, m := range s.Modulos {
			assert.Equal(t, s.Seccion.ID, m.Modulo.SeccionID,
				"el módulo %s debe colgar de su sección padre", m.Modulo.ID)
			for _, f := range m.Funcionalidades {
				assert.Equal(t, m.Modulo.ID, f.ModuloID,
					"la funcionalidad %s debe colgar de su módulo padre", f.ID)
				assert.NotEqual(t, "fx", f.ID, "la funcionalidad huérfana no debe aparecer")
			}
			assert.NotEqual(t, "mx", m.Modulo.ID, "el módulo huérfano no debe aparecer")
		}
	}
}

// El filtro de los editores descarta secciones y módulos sin funcionalidades.
func TestConFuncionalidades_FiltraVacios(t *testing.T) {
	secciones, modulos, funcionalidades := fixtureCatalogo()
	tree := catalog.ConFuncionalidades(catalog.BuildTree(secciones, modulos, funcionalidades))

	require.Len(t, tree, 2, "Soporte (sin módulos) no debe aparecer")
	assert.Equal(t, "s1", tree[0].Seccion.ID)
	require.Len(t, tree[0].Modulos, 1, "Usuarios (sin funcionalidades) no debe aparecer")
	assert.Equal(t, "m1", tree[0].Modulos[0].Modulo.ID)
	assert.Equal(t, "s2", tree[1].Seccion.ID)
}

func TestSeccionDe(t *testing.T) {
	secciones, modulos, funcionalidades := fixtureCatalogo()
	tree := catalog.BuildTree(secciones, modulos, funcionalidades)

	assert.Equal(t, "s1", catalog.SeccionDe(tree, "f2"))
	assert.Equal(t, "s2", catalog.SeccionDe(tree, "f3"))
	assert.Equal(t, "", catalog.SeccionDe(tree, "fx"), "huérfana: no pertenece al árbol")
}
