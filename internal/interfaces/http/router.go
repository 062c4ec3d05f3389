package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmpresaUC    *usecase.EmpresaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	CatalogoUC   *usecase.CatalogoUseCase
	RolUC        *usecase.RolUseCase
	PermisoUC    *usecase.PermisoUseCase
	FlagsUC      *usecase.FlagsUseCase
	AsignacionUC *usecase.AsignacionUseCase
	AccesoUC     *usecase.AccesoUseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	EquipoUC     *usecase.EquipoUseCase
	ReporteUC    *usecase.ReporteUseCase
	FeedbackUC   *usecase.FeedbackUseCase
	DashboardUC  *usecase.DashboardUseCase
	FeedbackHub  *ws.Hub
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	soloAdmin := RequireRole(entity.RolPlataformaAdmin)
	adminOSoporte := RequireRole(entity.RolPlataformaAdmin, entity.RolPlataformaSoporte)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas: administración de plataforma
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", soloAdmin, empresaHandler.List)
	empresas.Post("/", soloAdmin, empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", soloAdmin, empresaHandler.Update)

	// Feature flags por empresa
	flagsHandler := NewFlagsHandler(deps.FlagsUC)
	empresas.Get("/:id/flags", soloAdmin, flagsHandler.List)
	empresas.Put("/:id/flags", soloAdmin, flagsHandler.Sync)

	// Catálogo de permisos: el árbol lo lee cualquiera, lo muta solo admin
	catalogo := protected.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogo.Get("/", catalogoHandler.Tree)
	catalogo.Post("/secciones", soloAdmin, catalogoHandler.CreateSeccion)
	catalogo.Put("/secciones/:id", soloAdmin, catalogoHandler.UpdateSeccion)
	catalogo.Post("/modulos", soloAdmin, catalogoHandler.CreateModulo)
	catalogo.Put("/modulos/:id", soloAdmin, catalogoHandler.UpdateModulo)
	catalogo.Post("/funcionalidades", soloAdmin, catalogoHandler.CreateFuncionalidad)
	catalogo.Put("/funcionalidades/:id", soloAdmin, catalogoHandler.UpdateFuncionalidad)

	// Roles y su matriz de permisos
	roles := protected.Group("/roles")
	rolHandler := NewRolHandler(deps.RolUC, deps.PermisoUC)
	roles.Get("/", rolHandler.List)
	roles.Post("/", soloAdmin, rolHandler.Create)
	roles.Get("/:id", rolHandler.GetByID)
	roles.Put("/:id", soloAdmin, rolHandler.Update)
	roles.Delete("/:id", soloAdmin, rolHandler.Delete)
	roles.Get("/:id/permisos", rolHandler.ListPermisos)
	roles.Put("/:id/permisos", soloAdmin, rolHandler.SyncPermisos)

	// Usuarios: administración dentro de la empresa del token
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", soloAdmin, usuarioHandler.List)
	usuarios.Get("/:id", soloAdmin, usuarioHandler.GetByID)
	usuarios.Put("/:id", soloAdmin, usuarioHandler.Update)
	usuarios.Delete("/:id", soloAdmin, usuarioHandler.Delete)

	// Asignaciones usuario→rol
	asignacionHandler := NewAsignacionHandler(deps.AsignacionUC)
	usuarios.Get("/:id/asignaciones", asignacionHandler.List)
	usuarios.Put("/:id/asignaciones", soloAdmin, asignacionHandler.Sync)
	usuarios.Put("/:id/asignaciones/:rolId", soloAdmin, asignacionHandler.Asignar)

	// Resolver de acceso (lo consulta la UI para decidir qué pintar)
	accesoHandler := NewAccesoHandler(deps.AccesoUC)
	protected.Post("/acceso/check", accesoHandler.Check)

	// Empleados: protegido además por el permiso fino de su funcionalidad
	empleados := protected.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", RequireAcceso("personal.empleados.gestion", "read", deps.AccesoUC), empleadoHandler.List)
	empleados.Post("/", RequireAcceso("personal.empleados.gestion", "create", deps.AccesoUC), empleadoHandler.Create)
	empleados.Get("/:id", RequireAcceso("personal.empleados.gestion", "read", deps.AccesoUC), empleadoHandler.GetByID)
	empleados.Put("/:id", RequireAcceso("personal.empleados.gestion", "update", deps.AccesoUC), empleadoHandler.Update)

	// Inventario de equipos; marcas y modelos son catálogo global
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	marcas := protected.Group("/marcas")
	marcas.Get("/", equipoHandler.ListMarcas)
	marcas.Post("/", adminOSoporte, equipoHandler.CreateMarca)
	modelos := protected.Group("/modelos")
	modelos.Get("/", equipoHandler.ListModelos)
	modelos.Post("/", adminOSoporte, equipoHandler.CreateModelo)

	equipos := protected.Group("/equipos")
	equipos.Get("/", RequireAcceso("inventario.equipos.gestion", "read", deps.AccesoUC), equipoHandler.ListEquipos)
	equipos.Post("/", RequireAcceso("inventario.equipos.gestion", "create", deps.AccesoUC), equipoHandler.CreateEquipo)
	equipos.Get("/:id", RequireAcceso("inventario.equipos.gestion", "read", deps.AccesoUC), equipoHandler.GetEquipo)
	equipos.Put("/:id", RequireAcceso("inventario.equipos.gestion", "update", deps.AccesoUC), equipoHandler.UpdateEquipo)

	// Reportes
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	protected.Get("/reportes/inventario", RequireAcceso("inventario.equipos.gestion", "export", deps.AccesoUC), reporteHandler.InventarioPDF)

	// Buzón de feedback
	feedbacks := protected.Group("/feedbacks")
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	feedbacks.Post("/", feedbackHandler.Create)
	feedbacks.Get("/", adminOSoporte, feedbackHandler.List)
	feedbacks.Get("/:id", adminOSoporte, feedbackHandler.GetByID)
	feedbacks.Put("/:id", adminOSoporte, feedbackHandler.Update)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumen)

	// Canal en vivo del buzón (websocket autenticado)
	if deps.FeedbackHub != nil {
		app.Get("/ws/feedback", ws.Upgrade(), AuthMiddleware(deps.JWTSecret), deps.FeedbackHub.Handler())
	}
}
