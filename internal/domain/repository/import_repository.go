package repository

import (
	"context"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
)

// ImportRepository puerto de persistencia de la tabla de importaciones.
// La tabla se reemplaza completa en cada carga; fuera de eso solo se edita la observación.
type ImportRepository interface {
	// ReplaceAll borra todas las filas y carga las del dataset en una sola transacción.
	// Si falla, la tabla queda con los datos anteriores.
	ReplaceAll(ctx context.Context, dataset *entity.ImportDataset) error

	// FindRanked devuelve hasta `limit` filas que cumplen el filtro, ordenadas por
	// valor unitario (CANTIDAD > 0 ? FOB / CANTIDAD : 0) en el sentido indicado.
	// Los empates se resuelven por orden de carga (id ascendente).
	FindRanked(ctx context.Context, f query.Filter, dir query.Direction, limit int) ([]*entity.ImportRecord, error)

	// Suggest devuelve valores distintos del campo que contienen el fragmento.
	Suggest(ctx context.Context, field query.Field, fragment string, limit int) ([]string, error)

	// UpdateObservation actualiza OBSERVACION por clave natural (DESPACHO, ITEM).
	// Devuelve la cantidad de filas afectadas.
	UpdateObservation(ctx context.Context, despacho, item, observacion string) (int64, error)

	// ListAll devuelve toda la tabla en orden de carga (exportación).
	ListAll(ctx context.Context) ([]*entity.ImportRecord, error)

	// Count cantidad de filas cargadas.
	Count(ctx context.Context) (int64, error)
}
