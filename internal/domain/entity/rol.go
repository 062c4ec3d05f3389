package entity

import "time"

// Rol existe dentro de una Empresa y una Seccion. Se permiten colisiones de
// nombre entre secciones o empresas distintas.
type Rol struct {
	ID          string
	EmpresaID   string
	SeccionID   string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RolPermiso entrada de la matriz de permisos: (rol, funcionalidad) única.
// Allow=false (o fila ausente) niega la funcionalidad sin importar Acciones.
// Acciones se conserva aunque Allow pase a false, para que reactivar el
// permiso restaure las elecciones por acción previas.
type RolPermiso struct {
	ID              string
	RolID           string
	FuncionalidadID string
	Allow           bool
	Acciones        map[string]bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccionesIguales compara dos mapas de acciones tratando la clave ausente y
// la clave en false como equivalentes (ambas niegan la acción).
func AccionesIguales(a, b map[string]bool) bool {
	for k, v := range a {
		if v != b[k] {
			return false
		}
	}
	for k, v := range b {
		if v != a[k] {
			return false
		}
	}
	return true
}
