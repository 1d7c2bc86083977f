// Package ranking contiene el motor de ranking por valor unitario y el
// formateador de registros para presentación.
package ranking

import (
	"context"
	"fmt"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
)

// DefaultTopN registros por lista cuando no se configura otro valor.
const DefaultTopN = 3

// UseCase obtiene los N registros de mayor y de menor valor unitario que
// cumplen el filtro. Dos consultas independientes al repositorio, sin reintentos.
type UseCase struct {
	repo repository.ImportRepository
	topN int
}

// NewUseCase construye el caso de uso. topN <= 0 usa DefaultTopN.
func NewUseCase(repo repository.ImportRepository, topN int) *UseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &UseCase{repo: repo, topN: topN}
}

// TopN tamaño de cada lista.
func (uc *UseCase) TopN() int { return uc.topN }

// Rank devuelve {high, low} formateados. Si alguna lista queda vacía responde
// domain.ErrNoMatches (o domain.ErrNoData si no hay nada cargado).
func (uc *UseCase) Rank(ctx context.Context, req dto.RankingRequest) (*dto.RankingResultDTO, error) {
	high, low, err := uc.rank(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.RankingResultDTO{
		High: FormatRecords(high),
		Low:  FormatRecords(low),
	}, nil
}

func (uc *UseCase) rank(ctx context.Context, req dto.RankingRequest) (high, low []*entity.ImportRecord, err error) {
	req.Normalize()
	filter := query.Build(req.Posicion, req.Mercaderia, req.Importador)

	high, err = uc.repo.FindRanked(ctx, filter, query.Descending, uc.topN)
	if err != nil {
		return nil, nil, fmt.Errorf("ranking.Rank high: %w", err)
	}
	low, err = uc.repo.FindRanked(ctx, filter, query.Ascending, uc.topN)
	if err != nil {
		return nil, nil, fmt.Errorf("ranking.Rank low: %w", err)
	}

	if len(high) == 0 || len(low) == 0 {
		return nil, nil, uc.emptyResult(ctx)
	}
	return high, low, nil
}

func (uc *UseCase) emptyResult(ctx context.Context) error {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("ranking.Rank count: %w", err)
	}
	if n == 0 {
		return domain.ErrNoData
	}
	return domain.ErrNoMatches
}
