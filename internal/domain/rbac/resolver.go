// Package rbac resuelve el acceso de un usuario a una funcionalidad:
// empresa → sección → rol → funcionalidad → acción, más el feature flag
// por empresa. La resolución es pura; los casos de uso cargan las filas.
package rbac

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// Motivos de denegación, útiles para auditoría y respuestas HTTP.
const (
	MotivoPermitido            = "permitido"
	MotivoFlagDeshabilitado    = "funcionalidad deshabilitada para la empresa"
	MotivoSinAsignacion        = "usuario sin rol en la sección"
	MotivoSinPermiso           = "rol sin permiso sobre la funcionalidad"
	MotivoAccionNoPermitida    = "acción no habilitada para el rol"
	MotivoFuncionalidadInvalid = "funcionalidad inexistente o inactiva"
)

// Consulta filas ya cargadas para una decisión de acceso.
//
// Flag: fila de empresa_funcionalidades para (empresa, funcionalidad);
// nil si no existe (ausencia = habilitada, default-on).
// Asignacion: fila de usuario_roles del usuario en la sección de la
// funcionalidad para la empresa; nil si no tiene rol ahí.
// Permiso: fila de rol_permisos para (rol asignado, funcionalidad);
// nil si no existe (ausencia = denegado, default-off).
// Accion: nombre de acción a verificar; vacío = solo nivel funcionalidad.
type Consulta struct {
	Flag       *entity.EmpresaFuncionalidad
	Asignacion *entity.UsuarioRol
	Permiso    *entity.RolPermiso
	Accion     string
}

// Decision resultado de la resolución.
type Decision struct {
	Permitido bool
	Motivo    string
}

// Resolver evalúa la cadena completa de acceso:
//
//  1. el feature flag de la empresa debe estar ausente o enabled=true;
//  2. el usuario debe tener asignación en la sección de la funcionalidad;
//  3. ese rol debe tener permiso con allow=true;
//  4. si se pide una acción, Acciones[accion] debe ser explícitamente true
//     (la clave ausente niega: opt-in por acción, allow no implica acciones).
//
// La deshabilitación por flag prevalece sobre cualquier permiso del rol.
func Resolver(q Consulta) Decision {
	if q.Flag != nil && !q.Flag.Enabled {
		return Decision{Permitido: false, Motivo: MotivoFlagDeshabilitado}
	}
	if q.Asignacion == nil {
		return Decision{Permitido: false, Motivo: MotivoSinAsignacion}
	}
	if q.Permiso == nil || !q.Permiso.Allow {
		return Decision{Permitido: false, Motivo: MotivoSinPermiso}
	}
	if q.Permiso.RolID != q.Asignacion.RolID {
		// El permiso cargado debe corresponder al rol asignado.
		return Decision{Permitido: false, Motivo: MotivoSinPermiso}
	}
	if q.Accion != "" && !q.Permiso.Acciones[q.Accion] {
		return Decision{Permitido: false, Motivo: MotivoAccionNoPermitida}
	}
	return Decision{Permitido: true, Motivo: MotivoPermitido}
}
