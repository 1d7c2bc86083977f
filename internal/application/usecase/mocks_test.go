package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
)

type mockParser struct {
	mock.Mock
}

func (m *mockParser) Parse(filename string, r io.Reader) (*entity.ImportDataset, error) {
	args := m.Called(filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ImportDataset), args.Error(1)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteXLSX(records []*entity.ImportRecord) ([]byte, error) {
	args := m.Called(records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockPDF struct {
	mock.Mock
}

func (m *mockPDF) GenerateRankingPDF(ctx context.Context, report ports.RankingReport) ([]byte, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
