package ranking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository/mocks"
)

func rec(despacho string, fob, qty int64) *entity.ImportRecord {
	return &entity.ImportRecord{
		Despacho:            despacho,
		Item:                "1",
		PosicionArancelaria: "8501.10",
		FOBDolar:            decimal.NewNullDecimal(decimal.NewFromInt(fob)),
		Cantidad:            decimal.NewNullDecimal(decimal.NewFromInt(qty)),
	}
}

func TestRank_HighAndLow(t *testing.T) {
	repo := new(mocks.ImportRepository)
	a, b, c := rec("A", 100, 10), rec("B", 50, 0), rec("C", 900, 3)
	filter := query.Build("8501", "", "")

	repo.On("FindRanked", mock.Anything, filter, query.Descending, 3).Return([]*entity.ImportRecord{c, a, b}, nil).Once()
	repo.On("FindRanked", mock.Anything, filter, query.Ascending, 3).Return([]*entity.ImportRecord{b, a, c}, nil).Once()

	uc := ranking.NewUseCase(repo, 0)
	res, err := uc.Rank(context.Background(), dto.RankingRequest{Posicion: "  8501 "})
	require.NoError(t, err)

	require.Len(t, res.High, 3)
	require.Len(t, res.Low, 3)
	assert.Equal(t, "C", res.High[0].Despacho)
	assert.True(t, res.High[0].ValorUnitario.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "$300.00", res.High[0].ValorUnitarioFmt)
	assert.Equal(t, "B", res.Low[0].Despacho)
	assert.True(t, res.Low[0].ValorUnitario.IsZero())
	repo.AssertExpectations(t)
}

func TestRank_TopNConfigured(t *testing.T) {
	repo := new(mocks.ImportRepository)
	a := rec("A", 10, 1)
	repo.On("FindRanked", mock.Anything, query.Filter{}, mock.Anything, 1).Return([]*entity.ImportRecord{a}, nil).Twice()

	uc := ranking.NewUseCase(repo, 1)
	assert.Equal(t, 1, uc.TopN())

	res, err := uc.Rank(context.Background(), dto.RankingRequest{})
	require.NoError(t, err)
	assert.Len(t, res.High, 1)
	assert.Len(t, res.Low, 1)
	repo.AssertExpectations(t)
}

func TestRank_NoMatches(t *testing.T) {
	repo := new(mocks.ImportRepository)
	repo.On("FindRanked", mock.Anything, mock.Anything, mock.Anything, 3).Return([]*entity.ImportRecord{}, nil)
	repo.On("Count", mock.Anything).Return(int64(12), nil).Once()

	uc := ranking.NewUseCase(repo, 3)
	res, err := uc.Rank(context.Background(), dto.RankingRequest{Posicion: "8501"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNoMatches)
}

func TestRank_EmptyStore(t *testing.T) {
	repo := new(mocks.ImportRepository)
	repo.On("FindRanked", mock.Anything, mock.Anything, mock.Anything, 3).Return([]*entity.ImportRecord{}, nil)
	repo.On("Count", mock.Anything).Return(int64(0), nil).Once()

	_, err := ranking.NewUseCase(repo, 3).Rank(context.Background(), dto.RankingRequest{})
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestRank_StoreErrorWrapped(t *testing.T) {
	repo := new(mocks.ImportRepository)
	boom := errors.New("conexión perdida")
	repo.On("FindRanked", mock.Anything, mock.Anything, query.Descending, 3).Return(nil, boom).Once()

	_, err := ranking.NewUseCase(repo, 3).Rank(context.Background(), dto.RankingRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ranking.Rank high")
	repo.AssertNotCalled(t, "FindRanked", mock.Anything, mock.Anything, query.Ascending, 3)
}

func TestRank_Idempotent(t *testing.T) {
	repo := new(mocks.ImportRepository)
	a, c := rec("A", 100, 10), rec("C", 900, 3)
	repo.On("FindRanked", mock.Anything, mock.Anything, query.Descending, 3).Return([]*entity.ImportRecord{c, a}, nil)
	repo.On("FindRanked", mock.Anything, mock.Anything, query.Ascending, 3).Return([]*entity.ImportRecord{a, c}, nil)

	uc := ranking.NewUseCase(repo, 3)
	first, err := uc.Rank(context.Background(), dto.RankingRequest{Importador: "acme"})
	require.NoError(t, err)
	second, err := uc.Rank(context.Background(), dto.RankingRequest{Importador: "acme"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
