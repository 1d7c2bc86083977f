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

	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Importaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Importaciones-api/internal/interfaces/http"
	"github.com/jhoicas/Importaciones-api/pkg/config"
	"github.com/jhoicas/Importaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Int("top_n", cfg.Ranking.TopN).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeStore, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer closeStore()

	rankingUC := ranking.NewUseCase(repo, cfg.Ranking.TopN)
	exportUC := usecase.NewExportUseCase(repo, spreadsheet.NewWriter(), infrapdf.NewMarotoPDFGenerator(), rankingUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxBytes(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Importaciones API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:   cfg.App.Name,
		ImportUC:      usecase.NewImportUseCase(repo, spreadsheet.NewParser(), log.Named("ingesta")),
		StatusUC:      usecase.NewStatusUseCase(repo),
		RankingUC:     rankingUC,
		SuggestionUC:  usecase.NewSuggestionUseCase(repo, cfg.Ranking.SuggestLimit, log.Named("sugerencias")),
		ObservationUC: usecase.NewObservationUseCase(repo),
		ExportUC:      exportUC,
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
