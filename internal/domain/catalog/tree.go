// Package catalog arma el árbol navegable Seccion → Modulo → Funcionalidad a
// partir de las filas planas del catálogo, cargadas de forma independiente.
package catalog

import (
	"sort"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// SeccionNode nodo raíz del árbol con sus módulos ordenados.
type SeccionNode struct {
	Seccion entity.Seccion
	Modulos []ModuloNode
}

// ModuloNode nodo intermedio con sus funcionalidades ordenadas.
type ModuloNode struct {
	Modulo          entity.Modulo
	Funcionalidades []entity.Funcionalidad
}

// BuildTree ensambla el árbol de tres niveles. Las entradas pueden venir en
// cualquier orden; la salida queda ordenada por (Orden asc, Nombre) en cada
// nivel. Un módulo o funcionalidad cuyo padre no está entre las filas
// recibidas se descarta en silencio: nunca aparecen huérfanos en el árbol.
func BuildTree(secciones []entity.Seccion, modulos []entity.Modulo, funcionalidades []entity.Funcionalidad) []SeccionNode {
	funcsPorModulo := make(map[string][]entity.Funcionalidad, len(modulos))
	for _, f := range funcionalidades {
		funcsPorModulo[f.ModuloID] = append(funcsPorModulo[f.ModuloID], f)
	}

	modulosPorSeccion := make(map[string][]ModuloNode, len(secciones))
	for _, m := range modulos {
		fs := funcsPorModulo[m.ID]
		sort.Slice(fs, func(i, j int) bool {
			if fs[i].Orden != fs[j].Orden {
				return fs[i].Orden < fs[j].Orden
			}
			return fs[i].Nombre < fs[j].Nombre
		})
		modulosPorSeccion[m.SeccionID] = append(modulosPorSeccion[m.SeccionID], ModuloNode{
			Modulo:          m,
			Funcionalidades: fs,
		})
	}

	tree := make([]SeccionNode, 0, len(secciones))
	for _, s := range secciones {
		ms := modulosPorSeccion[s.ID]
		sort.Slice(ms, func(i, j int) bool {
			if ms[i].Modulo.Orden != ms[j].Modulo.Orden {
				return ms[i].Modulo.Orden < ms[j].Modulo.Orden
			}
			return ms[i].Modulo.Nombre < ms[j].Modulo.Nombre
		})
		tree = append(tree, SeccionNode{Seccion: s, Modulos: ms})
	}
	sort.Slice(tree, func(i, j int) bool {
		if tree[i].Seccion.Orden != tree[j].Seccion.Orden {
			return tree[i].Seccion.Orden < tree[j].Seccion.Orden
		}
		return tree[i].Seccion.Nombre < tree[j].Seccion.Nombre
	})
	return tree
}

// ConFuncionalidades filtra las secciones sin ninguna funcionalidad alcanzable
// (lo usan los editores de permisos y feature flags, no el navegador del
// catálogo). También descarta módulos vacíos dentro de las secciones que quedan.
func ConFuncionalidades(tree []SeccionNode) []SeccionNode {
	out := make([]SeccionNode, 0, len(tree))
	for _, s := range tree {
		ms := make([]ModuloNode, 0, len(s.Modulos))
		for _, m := range s.Modulos {
			if len(m.Funcionalidades) > 0 {
				ms = append(ms, m)
			}
		}
		if len(ms) > 0 {
			out = append(out, SeccionNode{Seccion: s.Seccion, Modulos: ms})
		}
	}
	return out
}

// SeccionDe devuelve el id de la sección a la que pertenece una funcionalidad
// recorriendo el árbol; cadena vacía si la funcionalidad no está en el árbol.
func SeccionDe(tree []SeccionNode, funcionalidadID string) string {
	for _, s := range tree {
		for _, m := range s.Modulos {
			for _, f := range m.Funcionalidades {
				if f.ID == funcionalidadID {
					return s.Seccion.ID
				}
			}
		}
	}
	return ""
}
