package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func asignacion(rolID string) *entity.UsuarioRol {
	return &entity.UsuarioRol{ID: "ur1", EmpresaID: "e1", UserID: "u1", SeccionID: "s1", RolID: rolID}
}

func permiso(rolID string, allow bool, acciones map[string]bool) *entity.RolPermiso {
	return &entity.RolPermiso{ID: "p1", RolID: rolID, FuncionalidadID: "f1", Allow: allow, Acciones: acciones}
}

func flag(enabled bool) *entity.EmpresaFuncionalidad {
	return &entity.EmpresaFuncionalidad{ID: "ef1", EmpresaID: "e1", FuncionalidadID: "f1", Enabled: enabled}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena completa de resolución
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: flag ausente (default habilitada), asignación presente,
// permiso allow=true y acción explícitamente en true.
func TestResolver_AccesoCompleto(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Flag:       nil,
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, map[string]bool{entity.AccionRead: true}),
		Accion:     entity.AccionRead,
	})
	assert.True(t, d.Permitido)
	assert.Equal(t, rbac.MotivoPermitido, d.Motivo)
}

// Escenario 6 de la especificación de acceso: la deshabilitación por feature
// flag prevalece sobre un permiso allow=true del rol.
func TestResolver_FlagDeshabilitadoPrevalece(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Flag:       flag(false),
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, map[string]bool{entity.AccionRead: true}),
		Accion:     entity.AccionRead,
	})
	assert.False(t, d.Permitido)
	assert.Equal(t, rbac.MotivoFlagDeshabilitado, d.Motivo)
}

// Un flag explícito enabled=true se comporta igual que la ausencia de fila.
func TestResolver_FlagExplicitoHabilitado(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Flag:       flag(true),
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, nil),
	})
	assert.True(t, d.Permitido)
}

// Polaridad por defecto de permisos: sin fila de permiso → denegado.
func TestResolver_SinPermiso_Denegado(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    nil,
	})
	assert.False(t, d.Permitido)
	assert.Equal(t, rbac.MotivoSinPermiso, d.Motivo)
}

func TestResolver_AllowFalse_Denegado(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", false, map[string]bool{entity.AccionRead: true}),
		Accion:     entity.AccionRead,
	})
	assert.False(t, d.Permitido, "allow=false niega aunque la acción esté en true")
	assert.Equal(t, rbac.MotivoSinPermiso, d.Motivo)
}

func TestResolver_SinAsignacion_Denegado(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: nil,
		Permiso:    permiso("r1", true, nil),
	})
	assert.False(t, d.Permitido)
	assert.Equal(t, rbac.MotivoSinAsignacion, d.Motivo)
}

// Acción: opt-in explícito. Clave ausente del mapa = denegada; allow=true a
// nivel funcionalidad no implica ninguna acción.
func TestResolver_AccionAusente_Denegada(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, map[string]bool{entity.AccionRead: true}),
		Accion:     entity.AccionDelete,
	})
	assert.False(t, d.Permitido)
	assert.Equal(t, rbac.MotivoAccionNoPermitida, d.Motivo)
}

func TestResolver_AccionEnFalse_Denegada(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, map[string]bool{entity.AccionExport: false}),
		Accion:     entity.AccionExport,
	})
	assert.False(t, d.Permitido)
}

// Sin acción pedida, allow=true con mapa vacío basta para el nivel funcionalidad.
func TestResolver_SoloNivelFuncionalidad(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r1", true, map[string]bool{}),
	})
	assert.True(t, d.Permitido)
}

// El permiso debe ser del rol realmente asignado; un permiso de otro rol no vale.
func TestResolver_PermisoDeOtroRol_Denegado(t *testing.T) {
	d := rbac.Resolver(rbac.Consulta{
		Asignacion: asignacion("r1"),
		Permiso:    permiso("r2", true, map[string]bool{entity.AccionRead: true}),
		Accion:     entity.AccionRead,
	})
	assert.False(t, d.Permitido)
	assert.Equal(t, rbac.MotivoSinPermiso, d.Motivo)
}
