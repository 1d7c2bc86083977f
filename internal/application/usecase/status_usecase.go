package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
)

// StatusUseCase indica si hay datos cargados.
type StatusUseCase struct {
	repo repository.ImportRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.ImportRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// Estado cantidad de registros y si la tabla tiene datos.
func (uc *StatusUseCase) Estado(ctx context.Context) (*dto.EstadoDTO, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("importaciones.Estado: %w", err)
	}
	return &dto.EstadoDTO{Cargado: n > 0, Registros: n}, nil
}
