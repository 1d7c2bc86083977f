// Package pdf genera el reporte de ranking por valor unitario.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  FILTROS: posición / mercadería / importador                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N de mayor valor unitario                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N de menor valor unitario                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 150, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.RankingPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.RankingPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRankingPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRankingPDF(_ context.Context, report ports.RankingReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ranking por valor unitario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filtersRow(report.Filtros))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow(fmt.Sprintf("Mayor valor unitario (top %d)", report.TopN), colorPrimary))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.High)...)

	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionRow(fmt.Sprintf("Menor valor unitario (top %d)", report.TopN), colorLow))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Low)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report ports.RankingReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RANKING DE IMPORTACIONES POR VALOR UNITARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func filtersRow(f dto.RankingRequest) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Posición: %s   |   Mercadería: %s   |   Importador: %s",
				nonEmpty(f.Posicion, "(todas)"),
				nonEmpty(f.Mercaderia, "(todas)"),
				nonEmpty(f.Importador, "(todos)"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func sectionRow(title string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: color, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Despacho", 2, align.Left),
		h("Posición", 1, align.Left),
		h("Mercadería", 3, align.Left),
		h("Importador", 2, align.Left),
		h("FOB U$S", 1, align.Right),
		h("Cantidad", 1, align.Right),
		h("Valor unit.", 2, align.Right),
	)
}

func tableRows(records []dto.RecordDTO) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			cell(r.Despacho+" / "+r.Item, 2, align.Left),
			cell(r.PosicionArancelaria, 1, align.Left),
			cell(r.Mercaderia, 3, align.Left),
			cell(r.Importador, 2, align.Left),
			cell(r.FOBFmt, 1, align.Right),
			cell(r.CantidadFmt, 1, align.Right),
			cell(r.ValorUnitarioFmt, 2, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
