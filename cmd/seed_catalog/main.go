// seed_catalog genera el script SQL que puebla el catálogo global de acceso
// (secciones, módulos y funcionalidades) con el árbol por defecto del sistema.
//
// Uso: go run ./cmd/seed_catalog
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// Los ids son UUIDs deterministas (v5 sobre el código) para que el script sea
// idempotente y re-ejecutable contra una base ya poblada.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type seccion struct {
	codigo  string
	nombre  string
	orden   int
	modulos []modulo
}

type modulo struct {
	codigo          string
	nombre          string
	orden           int
	funcionalidades []funcionalidad
}

type funcionalidad struct {
	codigo   string
	nombre   string
	orden    int
	acciones []string
}

// catálogo por defecto; el admin de plataforma puede extenderlo vía API.
var catalogo = []seccion{
	{
		codigo: "administracion", nombre: "Administración", orden: 1,
		modulos: []modulo{
			{
				codigo: "admin.empresas", nombre: "Empresas", orden: 1,
				funcionalidades: []funcionalidad{
					{codigo: "admin.empresas.gestion", nombre: "Gestión de empresas", orden: 1,
						acciones: []string{"read", "create", "update"}},
					{codigo: "admin.empresas.flags", nombre: "Funcionalidades por empresa", orden: 2,
						acciones: []string{"read", "update"}},
				},
			},
			{
				codigo: "admin.usuarios", nombre: "Usuarios", orden: 2,
				funcionalidades: []funcionalidad{
					{codigo: "admin.usuarios.gestion", nombre: "Gestión de usuarios", orden: 1,
						acciones: []string{"read", "create", "update", "delete"}},
					{codigo: "admin.usuarios.roles", nombre: "Asignación de roles", orden: 2,
						acciones: []string{"read", "update"}},
				},
			},
			{
				codigo: "admin.roles", nombre: "Roles y permisos", orden: 3,
				funcionalidades: []funcionalidad{
					{codigo: "admin.roles.gestion", nombre: "Gestión de roles", orden: 1,
						acciones: []string{"read", "create", "update", "delete"}},
					{codigo: "admin.roles.permisos", nombre: "Matriz de permisos", orden: 2,
						acciones: []string{"read", "update"}},
				},
			},
		},
	},
	{
		codigo: "personal", nombre: "Personal", orden: 2,
		modulos: []modulo{
			{
				codigo: "personal.empleados", nombre: "Empleados", orden: 1,
				funcionalidades: []funcionalidad{
					{codigo: "personal.empleados.gestion", nombre: "Gestión de empleados", orden: 1,
						acciones: []string{"read", "create", "update", "export"}},
				},
			},
		},
	},
	{
		codigo: "inventario", nombre: "Inventario", orden: 3,
		modulos: []modulo{
			{
				codigo: "inventario.equipos", nombre: "Equipos", orden: 1,
				funcionalidades: []funcionalidad{
					{codigo: "inventario.equipos.gestion", nombre: "Gestión de equipos", orden: 1,
						acciones: []string{"read", "create", "update", "export", "print"}},
					{codigo: "inventario.equipos.catalogo", nombre: "Marcas y modelos", orden: 2,
						acciones: []string{"read", "create"}},
				},
			},
		},
	},
	{
		codigo: "soporte", nombre: "Soporte", orden: 4,
		modulos: []modulo{
			{
				codigo: "soporte.feedback", nombre: "Feedback", orden: 1,
				funcionalidades: []funcionalidad{
					{codigo: "soporte.feedback.envio", nombre: "Envío de feedback", orden: 1,
						acciones: []string{"read", "create"}},
					{codigo: "soporte.feedback.atencion", nombre: "Atención de feedback", orden: 2,
						acciones: []string{"read", "update", "approve"}},
				},
			},
			{
				codigo: "soporte.dashboard", nombre: "Tablero", orden: 2,
				funcionalidades: []funcionalidad{
					{codigo: "soporte.dashboard.resumen", nombre: "Resumen de empresa", orden: 1,
						acciones: []string{"read"}},
				},
			},
		},
	},
}

// espacio de nombres fijo para que el mismo código genere siempre el mismo id.
var nsCatalogo = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func idPara(codigo string) string {
	return uuid.NewSHA1(nsCatalogo, []byte(codigo)).String()
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo global de acceso por defecto\n")
	out.WriteString("-- Generado por cmd/seed_catalog; ids deterministas por código\n\n")

	var nSec, nMod, nFun int
	for _, s := range catalogo {
		fmt.Fprintf(out, "INSERT INTO secciones (id, codigo, nombre, orden) VALUES ('%s', '%s', '%s', %d)\n",
			idPara(s.codigo), s.codigo, escapeSQL(s.nombre), s.orden)
		out.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, orden = EXCLUDED.orden;\n")
		nSec++
		for _, m := range s.modulos {
			fmt.Fprintf(out, "INSERT INTO modulos (id, seccion_id, codigo, nombre, orden) VALUES ('%s', '%s', '%s', '%s', %d)\n",
				idPara(m.codigo), idPara(s.codigo), m.codigo, escapeSQL(m.nombre), m.orden)
			out.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, orden = EXCLUDED.orden;\n")
			nMod++
			for _, f := range m.funcionalidades {
				fmt.Fprintf(out, "INSERT INTO funcionalidades (id, modulo_id, codigo, nombre, acciones, orden) VALUES ('%s', '%s', '%s', '%s', '%s', %d)\n",
					idPara(f.codigo), idPara(m.codigo), f.codigo, escapeSQL(f.nombre), accionesJSON(f.acciones), f.orden)
				out.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, acciones = EXCLUDED.acciones, orden = EXCLUDED.orden;\n")
				nFun++
			}
		}
		out.WriteString("\n")
	}

	fmt.Printf("Generado %s: %d secciones, %d módulos, %d funcionalidades\n", outPath, nSec, nMod, nFun)
}

func accionesJSON(acciones []string) string {
	quoted := make([]string, len(acciones))
	for i, a := range acciones {
		quoted[i] = `"` + a + `"`
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
