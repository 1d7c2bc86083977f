package ports

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
)

// SpreadsheetParser convierte un archivo subido (xlsx/csv) en un dataset validado.
// Errores esperables: domain.ErrUnsupportedFile, domain.ErrMissingColumns, domain.ErrEmptyFile.
type SpreadsheetParser interface {
	Parse(filename string, r io.Reader) (*entity.ImportDataset, error)
}

// SpreadsheetWriter serializa la tabla completa a xlsx.
type SpreadsheetWriter interface {
	WriteXLSX(records []*entity.ImportRecord) ([]byte, error)
}

// RankingReport datos del reporte PDF de ranking.
type RankingReport struct {
	Filtros     dto.RankingRequest
	TopN        int
	High        []dto.RecordDTO
	Low         []dto.RecordDTO
	GeneratedAt time.Time
}

// RankingPDFGenerator genera el PDF del ranking.
type RankingPDFGenerator interface {
	GenerateRankingPDF(ctx context.Context, report RankingReport) ([]byte, error)
}
