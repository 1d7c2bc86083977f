package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName   string
	ImportUC      *usecase.ImportUseCase
	StatusUC      *usecase.StatusUseCase
	RankingUC     *ranking.UseCase
	SuggestionUC  *usecase.SuggestionUseCase
	ObservationUC *usecase.ObservationUseCase
	ExportUC      *usecase.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	// Importaciones
	importHandler := NewImportHandler(deps.ImportUC, deps.StatusUC, deps.ExportUC)
	imports := api.Group("/importaciones")
	imports.Get("/estado", importHandler.Estado)
	imports.Post("/upload", importHandler.Upload)
	imports.Get("/export", importHandler.Export)

	// Ranking
	rankingHandler := NewRankingHandler(deps.RankingUC, deps.ExportUC)
	api.Post("/ranking", rankingHandler.Post)
	api.Get("/ranking", rankingHandler.Get)
	api.Get("/ranking/pdf", rankingHandler.PDF)

	// Buscador
	api.Get("/sugerencias", NewSuggestionHandler(deps.SuggestionUC).Get)
	api.Post("/observaciones", NewObservationHandler(deps.ObservationUC).Post)
}
