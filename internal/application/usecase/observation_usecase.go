package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
)

// ObservationUseCase edición de la observación de una línea (DESPACHO + ITEM).
type ObservationUseCase struct {
	repo repository.ImportRepository
}

// NewObservationUseCase construye el caso de uso.
func NewObservationUseCase(repo repository.ImportRepository) *ObservationUseCase {
	return &ObservationUseCase{repo: repo}
}

// Update guarda la observación. despacho e item son obligatorios; si ninguna
// fila coincide devuelve domain.ErrNotFound.
func (uc *ObservationUseCase) Update(ctx context.Context, req dto.UpdateObservationRequest) error {
	despacho := strings.TrimSpace(req.Despacho)
	item := strings.TrimSpace(req.Item)
	if despacho == "" || item == "" {
		return fmt.Errorf("%w: despacho e item son obligatorios", domain.ErrInvalidInput)
	}

	n, err := uc.repo.UpdateObservation(ctx, despacho, item, req.Observacion)
	if err != nil {
		return fmt.Errorf("observaciones.Update: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
