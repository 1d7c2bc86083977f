// Package mocks dobles de prueba de los repositorios, basados en testify/mock.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
)

var _ repository.ImportRepository = (*ImportRepository)(nil)

// ImportRepository mock de repository.ImportRepository.
type ImportRepository struct {
	mock.Mock
}

func (m *ImportRepository) ReplaceAll(ctx context.Context, dataset *entity.ImportDataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *ImportRepository) FindRanked(ctx context.Context, f query.Filter, dir query.Direction, limit int) ([]*entity.ImportRecord, error) {
	args := m.Called(ctx, f, dir, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ImportRecord), args.Error(1)
}

func (m *ImportRepository) Suggest(ctx context.Context, field query.Field, fragment string, limit int) ([]string, error) {
	args := m.Called(ctx, field, fragment, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ImportRepository) UpdateObservation(ctx context.Context, despacho, item, observacion string) (int64, error) {
	args := m.Called(ctx, despacho, item, observacion)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ImportRepository) ListAll(ctx context.Context) ([]*entity.ImportRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ImportRecord), args.Error(1)
}

func (m *ImportRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
