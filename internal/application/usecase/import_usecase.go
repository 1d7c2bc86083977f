package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
	"github.com/jhoicas/Importaciones-api/pkg/logger"
)

// ImportUseCase carga una planilla y reemplaza por completo la tabla de importaciones.
// Si el archivo se rechaza, los datos anteriores quedan intactos.
type ImportUseCase struct {
	repo   repository.ImportRepository
	parser ports.SpreadsheetParser
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.ImportRepository, parser ports.SpreadsheetParser, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{repo: repo, parser: parser, log: log}
}

// Upload parsea, valida y reemplaza. Errores de formato vienen envueltos sobre
// domain.ErrUnsupportedFile, domain.ErrMissingColumns o domain.ErrEmptyFile.
func (uc *ImportUseCase) Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResultDTO, error) {
	filename = filepath.Base(filename)
	ds, err := uc.parser.Parse(filename, r)
	if err != nil {
		uc.log.Warn().Err(err).Str("archivo", filename).Msg("planilla rechazada")
		return nil, fmt.Errorf("importaciones.Upload: %w", err)
	}

	batchID := uuid.NewString()
	if err := uc.repo.ReplaceAll(ctx, ds); err != nil {
		return nil, fmt.Errorf("importaciones.Upload: %w", err)
	}

	uc.log.Info().
		Str("batch_id", batchID).
		Str("archivo", filename).
		Int("registros", len(ds.Records)).
		Strs("valoraciones", ds.ValuationCols).
		Msg("planilla cargada")

	return &dto.UploadResultDTO{
		BatchID:       batchID,
		Archivo:       filename,
		Registros:     len(ds.Records),
		Valoraciones:  nonNil(ds.ValuationCols),
		ColumnasExtra: nonNil(ds.ExtraColumns),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
