package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
)

// SuggestionHandler autocompletado del buscador.
type SuggestionHandler struct {
	uc *usecase.SuggestionUseCase
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(uc *usecase.SuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

// Get godoc
// @Summary      Sugerencias de posición arancelaria o importador
// @Tags         sugerencias
// @Produce      json
// @Param        q      query  string  true   "Fragmento a buscar"
// @Param        campo  query  string  false  "importador | posicion (por defecto)"
// @Success      200  {array}  string
// @Router       /api/sugerencias [get]
func (h *SuggestionHandler) Get(c *fiber.Ctx) error {
	var req dto.SuggestionRequest
	if err := c.QueryParser(&req); err != nil {
		return c.JSON([]string{})
	}
	return c.JSON(h.uc.Suggest(c.Context(), req))
}
