package dto

// CreateSeccionRequest entrada para crear una sección del catálogo.
type CreateSeccionRequest struct {
	Codigo      string `json:"codigo" validate:"required,min=1,max=100"`
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	Orden       int    `json:"orden" validate:"min=0"`
}

// CreateModuloRequest entrada para crear un módulo dentro de una sección.
type CreateModuloRequest struct {
	SeccionID   string `json:"seccion_id" validate:"required,uuid"`
	Codigo      string `json:"codigo" validate:"required,min=1,max=100"`
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	Orden       int    `json:"orden" validate:"min=0"`
}

// CreateFuncionalidadRequest entrada para crear una funcionalidad.
type CreateFuncionalidadRequest struct {
	ModuloID    string   `json:"modulo_id" validate:"required,uuid"`
	Codigo      string   `json:"codigo" validate:"required,min=1,max=100"`
	Nombre      string   `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string   `json:"descripcion" validate:"omitempty,max=500"`
	Acciones    []string `json:"acciones" validate:"omitempty,dive,min=1,max=50"`
	Orden       int      `json:"orden" validate:"min=0"`
}

// UpdateCatalogoItemRequest actualización parcial de sección/módulo/funcionalidad.
type UpdateCatalogoItemRequest struct {
	Nombre      *string  `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string  `json:"descripcion" validate:"omitempty,max=500"`
	Orden       *int     `json:"orden" validate:"omitempty,min=0"`
	Acciones    []string `json:"acciones" validate:"omitempty,dive,min=1,max=50"`
	Activo      *bool    `json:"activo"`
}

// FuncionalidadResponse hoja del árbol del catálogo.
type FuncionalidadResponse struct {
	ID          string   `json:"id"`
	ModuloID    string   `json:"modulo_id"`
	Codigo      string   `json:"codigo"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Acciones    []string `json:"acciones"`
	Orden       int      `json:"orden"`
	Activo      bool     `json:"activo"`
}

// ModuloResponse nodo intermedio del árbol.
type ModuloResponse struct {
	ID              string                  `json:"id"`
	SeccionID       string                  `json:"seccion_id"`
	Codigo          string                  `json:"codigo"`
	Nombre          string                  `json:"nombre"`
	Descripcion     string                  `json:"descripcion"`
	Orden           int                     `json:"orden"`
	Activo          bool                    `json:"activo"`
	Funcionalidades []FuncionalidadResponse `json:"funcionalidades"`
}

// SeccionResponse nodo raíz del árbol.
type SeccionResponse struct {
	ID          string           `json:"id"`
	Codigo      string           `json:"codigo"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Orden       int              `json:"orden"`
	Modulos     []ModuloResponse `json:"modulos"`
}

// CatalogoTreeResponse árbol completo Seccion → Modulo → Funcionalidad.
type CatalogoTreeResponse struct {
	Secciones []SeccionResponse `json:"secciones"`
}
