package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-api/internal/infrastructure/webhook"
	httpRouter "github.com/jhoicas/gestion-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-api/internal/interfaces/ws"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Name, cfg.App.Env, cfg.Log.Level)
	log.Info().
		Str("env", cfg.App.Env).
		Str("level", cfg.Log.Level).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	permisoRepo := postgres.NewRolPermisoRepository(pool)
	flagRepo := postgres.NewEmpresaFuncionalidadRepository(pool)
	asignacionRepo := postgres.NewUsuarioRolRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)
	rolUC := usecase.NewRolUseCase(rolRepo, empresaRepo, catalogoRepo)
	permisoUC := usecase.NewPermisoUseCase(permisoRepo, rolRepo)
	flagsUC := usecase.NewFlagsUseCase(flagRepo, empresaRepo)
	asignacionUC := usecase.NewAsignacionUseCase(asignacionRepo, usuarioRepo, rolRepo, txRunner)
	accesoUC := usecase.NewAccesoUseCase(catalogoRepo, flagRepo, asignacionRepo, permisoRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	equipoUC := usecase.NewEquipoUseCase(equipoRepo)

	// PDF: reporte descargable del inventario de equipos
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reporteUC := usecase.NewReporteUseCase(equipoRepo, empresaRepo, pdfGenerator)

	// Buzón de feedback: hub websocket por empresa + webhook saliente
	feedbackHub := ws.NewHub(log)
	notifier := webhook.NewNotifier(time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo, empresaRepo, feedbackHub, notifier, log)

	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmpresaUC:    empresaUC,
		UsuarioUC:    usuarioUC,
		CatalogoUC:   catalogoUC,
		RolUC:        rolUC,
		PermisoUC:    permisoUC,
		FlagsUC:      flagsUC,
		AsignacionUC: asignacionUC,
		AccesoUC:     accesoUC,
		EmpleadoUC:   empleadoUC,
		EquipoUC:     equipoUC,
		ReporteUC:    reporteUC,
		FeedbackUC:   feedbackUC,
		DashboardUC:  dashboardUC,
		FeedbackHub:  feedbackHub,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
