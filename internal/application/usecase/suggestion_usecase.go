package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
	"github.com/jhoicas/Importaciones-api/pkg/logger"
)

const defaultSuggestLimit = 10

// SuggestionUseCase autocompletado de posición arancelaria e importador.
type SuggestionUseCase struct {
	repo  repository.ImportRepository
	limit int
	log   *logger.Logger
}

// NewSuggestionUseCase construye el caso de uso. limit <= 0 usa 10.
func NewSuggestionUseCase(repo repository.ImportRepository, limit int, log *logger.Logger) *SuggestionUseCase {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	return &SuggestionUseCase{repo: repo, limit: limit, log: log}
}

// Suggest valores distintos que contienen q. Nunca falla: un error del
// almacén se registra y devuelve lista vacía.
func (uc *SuggestionUseCase) Suggest(ctx context.Context, req dto.SuggestionRequest) []string {
	q := strings.TrimSpace(req.Q)
	if q == "" {
		return []string{}
	}
	field := query.SuggestField(strings.ToLower(strings.TrimSpace(req.Campo)))

	values, err := uc.repo.Suggest(ctx, field, q, uc.limit)
	if err != nil {
		uc.log.Error().Err(err).Str("campo", string(field)).Str("q", q).Msg("sugerencias: error de consulta")
		return []string{}
	}
	if values == nil {
		return []string{}
	}
	return values
}
