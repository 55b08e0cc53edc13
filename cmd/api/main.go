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

	appmoves "github.com/stockmaster/ops-gateway/internal/application/moves"
	"github.com/stockmaster/ops-gateway/internal/infrastructure/backendapi"
	infrapdf "github.com/stockmaster/ops-gateway/internal/infrastructure/pdf"
	httpRouter "github.com/stockmaster/ops-gateway/internal/interfaces/http"
	"github.com/stockmaster/ops-gateway/pkg/config"
	"github.com/stockmaster/ops-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando gateway de operaciones")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	// Cliente del backend de inventario (la autoridad de los datos)
	client := backendapi.New(cfg.Backend)
	moveSvc := backendapi.NewMoveService(client)
	refSvc := backendapi.NewReferenceService(client)

	movesUC := appmoves.NewUseCase(moveSvc)
	renderer := infrapdf.NewMarotoMoveRenderer()
	documentUC := appmoves.NewDocumentUseCase(movesUC, refSvc, renderer, time.Now)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster Ops Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovesUC:    movesUC,
		DocumentUC: documentUC,
		Refs:       refSvc,
		JWTSecret:  cfg.JWT.Secret,
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

	log.Info().Msg("gateway detenido")
}
