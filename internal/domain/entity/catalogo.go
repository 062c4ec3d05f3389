package entity

import "time"

// Acciones canónicas de una funcionalidad. La lista Acciones de cada
// Funcionalidad puede incluir además nombres libres definidos por el admin.
const (
	AccionRead    = "read"
	AccionCreate  = "create"
	AccionUpdate  = "update"
	AccionDelete  = "delete"
	AccionApprove = "approve"
	AccionExport  = "export"
	AccionPrint   = "print"
)

// Seccion agrupación de primer nivel del catálogo. Global: no pertenece a
// ninguna empresa. Los roles se definen al alcance de una sección.
type Seccion struct {
	ID          string
	Codigo      string // slug único, ej. "administracion"
	Nombre      string
	Descripcion string
	Orden       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Modulo agrupación intermedia; pertenece a exactamente una Seccion.
// El catálogo es de profundidad fija: Seccion → Modulo → Funcionalidad.
type Modulo struct {
	ID          string
	SeccionID   string
	Codigo      string
	Nombre      string
	Descripcion string
	Orden       int
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Funcionalidad unidad mínima de acceso permisible; pertenece a un Modulo.
// Acciones enumera los nombres de acción con sentido para esta funcionalidad.
type Funcionalidad struct {
	ID          string
	ModuloID    string
	Codigo      string
	Nombre      string
	Descripcion string
	Acciones    []string
	Orden       int
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
