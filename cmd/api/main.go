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
	"github.com/tu-usuario/rollout-api/internal/application/export"
	"github.com/tu-usuario/rollout-api/internal/application/movement"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
	"github.com/tu-usuario/rollout-api/internal/infrastructure/excel"
	"github.com/tu-usuario/rollout-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/rollout-api/internal/interfaces/http"
	"github.com/tu-usuario/rollout-api/pkg/config"
	"github.com/tu-usuario/rollout-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	notebookRepo := postgres.NewNotebookRepository(pool)
	placeRepo := postgres.NewPlaceRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notebookUC := usecase.NewNotebookUseCase(notebookRepo, placeRepo, movementRepo)
	placeUC := usecase.NewPlaceUseCase(placeRepo, notebookRepo, movementRepo)
	movementUC := movement.NewUseCase(txRunner, notebookRepo, placeRepo, movementRepo)
	exportUC := export.NewUseCase(notebookRepo, movementRepo, excel.NewExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rollout API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		NotebookUC: notebookUC,
		PlaceUC:    placeUC,
		MovementUC: movementUC,
		ExportUC:   exportUC,
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
