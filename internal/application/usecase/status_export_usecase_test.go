package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository/mocks"
)

func TestStatusUseCase_Estado(t *testing.T) {
	repo := new(mocks.ImportRepository)
	repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	repo.On("Count", mock.Anything).Return(int64(42), nil).Once()

	uc := usecase.NewStatusUseCase(repo)

	st, err := uc.Estado(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Cargado)

	st, err = uc.Estado(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Cargado)
	assert.Equal(t, int64(42), st.Registros)
}

func TestExportUseCase_Spreadsheet(t *testing.T) {
	repo := new(mocks.ImportRepository)
	writer := new(mockWriter)
	records := []*entity.ImportRecord{{Despacho: "D1"}}

	repo.On("ListAll", mock.Anything).Return(records, nil).Once()
	writer.On("WriteXLSX", records).Return([]byte("xlsx"), nil).Once()

	uc := usecase.NewExportUseCase(repo, writer, new(mockPDF), ranking.NewUseCase(repo, 3))
	file, err := uc.Spreadsheet(context.Background())
	require.NoError(t, err)

	assert.Equal(t, usecase.SpreadsheetFilename, file.Filename)
	assert.Equal(t, usecase.SpreadsheetContentType, file.ContentType)
	assert.Equal(t, []byte("xlsx"), file.Content)
}

func TestExportUseCase_SpreadsheetEmpty(t *testing.T) {
	repo := new(mocks.ImportRepository)
	repo.On("ListAll", mock.Anything).Return([]*entity.ImportRecord{}, nil).Once()

	uc := usecase.NewExportUseCase(repo, new(mockWriter), new(mockPDF), ranking.NewUseCase(repo, 3))
	_, err := uc.Spreadsheet(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestExportUseCase_RankingPDF(t *testing.T) {
	repo := new(mocks.ImportRepository)
	pdf := new(mockPDF)
	r := &entity.ImportRecord{
		Despacho: "D1",
		FOBDolar: decimal.NewNullDecimal(decimal.NewFromInt(900)),
		Cantidad: decimal.NewNullDecimal(decimal.NewFromInt(3)),
	}
	repo.On("FindRanked", mock.Anything, query.Build("8501", "", ""), mock.Anything, 2).Return([]*entity.ImportRecord{r}, nil).Twice()
	pdf.On("GenerateRankingPDF", mock.Anything, mock.MatchedBy(func(rep ports.RankingReport) bool {
		return rep.TopN == 2 && rep.Filtros.Posicion == "8501" &&
			len(rep.High) == 1 && rep.High[0].ValorUnitarioFmt == "$300.00"
	})).Return([]byte("%PDF"), nil).Once()

	uc := usecase.NewExportUseCase(repo, new(mockWriter), pdf, ranking.NewUseCase(repo, 2))
	file, err := uc.RankingPDF(context.Background(), dto.RankingRequest{Posicion: " 8501"})
	require.NoError(t, err)

	assert.Equal(t, usecase.RankingPDFFilename, file.Filename)
	assert.Equal(t, []byte("%PDF"), file.Content)
	pdf.AssertExpectations(t)
}

func TestExportUseCase_RankingPDFNoMatches(t *testing.T) {
	repo := new(mocks.ImportRepository)
	pdf := new(mockPDF)
	repo.On("FindRanked", mock.Anything, mock.Anything, mock.Anything, 3).Return([]*entity.ImportRecord{}, nil)
	repo.On("Count", mock.Anything).Return(int64(5), nil)

	uc := usecase.NewExportUseCase(repo, new(mockWriter), pdf, ranking.NewUseCase(repo, 3))
	_, err := uc.RankingPDF(context.Background(), dto.RankingRequest{Posicion: "0000"})

	assert.ErrorIs(t, err, domain.ErrNoMatches)
	pdf.AssertNotCalled(t, "GenerateRankingPDF", mock.Anything, mock.Anything)
}
