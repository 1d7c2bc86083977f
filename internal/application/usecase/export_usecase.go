package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
)

// Archivos de descarga.
const (
	SpreadsheetFilename    = "datos_exportados.xlsx"
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	RankingPDFFilename     = "ranking_valor_unitario.pdf"
	RankingPDFContentType  = "application/pdf"
)

// ExportUseCase descargas: tabla completa en xlsx y ranking en PDF.
type ExportUseCase struct {
	repo    repository.ImportRepository
	writer  ports.SpreadsheetWriter
	pdf     ports.RankingPDFGenerator
	ranking *ranking.UseCase
	now     func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	repo repository.ImportRepository,
	writer ports.SpreadsheetWriter,
	pdf ports.RankingPDFGenerator,
	rankingUC *ranking.UseCase,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, writer: writer, pdf: pdf, ranking: rankingUC, now: time.Now}
}

// Spreadsheet toda la tabla, con las observaciones editadas. Tabla vacía -> domain.ErrNoData.
func (uc *ExportUseCase) Spreadsheet(ctx context.Context) (*dto.ExportFile, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export.Spreadsheet: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}
	content, err := uc.writer.WriteXLSX(records)
	if err != nil {
		return nil, fmt.Errorf("export.Spreadsheet: %w", err)
	}
	return &dto.ExportFile{
		Filename:    SpreadsheetFilename,
		ContentType: SpreadsheetContentType,
		Content:     content,
	}, nil
}

// RankingPDF reporte con las dos listas del ranking para los filtros dados.
func (uc *ExportUseCase) RankingPDF(ctx context.Context, req dto.RankingRequest) (*dto.ExportFile, error) {
	req.Normalize()
	res, err := uc.ranking.Rank(ctx, req)
	if err != nil {
		return nil, err
	}
	content, err := uc.pdf.GenerateRankingPDF(ctx, ports.RankingReport{
		Filtros:     req,
		TopN:        uc.ranking.TopN(),
		High:        res.High,
		Low:         res.Low,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("export.RankingPDF: %w", err)
	}
	return &dto.ExportFile{
		Filename:    RankingPDFFilename,
		ContentType: RankingPDFContentType,
		Content:     content,
	}, nil
}
