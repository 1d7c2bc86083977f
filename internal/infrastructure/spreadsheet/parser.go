// Package spreadsheet lee y escribe las planillas de importaciones (xlsx y csv).
package spreadsheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/domain"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
)

// Extensiones aceptadas.
const (
	ExtXLSX = ".xlsx"
	ExtXLSM = ".xlsm"
	ExtCSV  = ".csv"
)

// Formatos de fecha en texto, día primero.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// table encabezados y filas crudas, antes de interpretar columnas.
type table struct {
	header []string
	rows   [][]string
}

var _ ports.SpreadsheetParser = (*Parser)(nil)

// Parser convierte un archivo subido en un ImportDataset.
type Parser struct{}

// NewParser construye el lector de planillas.
func NewParser() *Parser {
	return &Parser{}
}

// Parse elige el lector por extensión, valida columnas obligatorias y normaliza
// cada fila. No toca el almacén.
func (p *Parser) Parse(filename string, r io.Reader) (*entity.ImportDataset, error) {
	var (
		t   *table
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLSX, ExtXLSM:
		t, err = readXLSX(r)
	case ExtCSV:
		t, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFile, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return buildDataset(t)
}

func readXLSX(r io.Reader) (*table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: archivo excel inválido: %v", domain.ErrUnsupportedFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return &table{header: rows[0], rows: rows[1:]}, nil
}

func buildDataset(t *table) (*entity.ImportDataset, error) {
	index := make(map[string]int, len(t.header))
	ds := &entity.ImportDataset{}
	for i, h := range t.header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := index[h]; dup {
			continue
		}
		index[h] = i
		ds.Columns = append(ds.Columns, h)
		if !entity.IsSchemaColumn(h) {
			ds.ExtraColumns = append(ds.ExtraColumns, h)
		}
	}
	if len(index) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var missing []string
	for _, col := range entity.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}
	for _, col := range entity.ValuationColumns {
		if _, ok := index[col]; ok {
			ds.ValuationCols = append(ds.ValuationCols, col)
		}
	}

	for _, row := range t.rows {
		if blank(row) {
			continue
		}
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := &entity.ImportRecord{
			Despacho:            get(entity.ColDespacho),
			Item:                get(entity.ColItem),
			PosicionArancelaria: strings.TrimSpace(get(entity.ColPosicionArancelaria)),
			Mercaderia:          get(entity.ColMercaderia),
			Importador:          get(entity.ColImportador),
			FOBDolar:            parseNumber(get(entity.ColFOBDolar)),
			Cantidad:            parseNumber(get(entity.ColCantidad)),
			Oficializacion:      parseDate(get(entity.ColOficializacion)),
			Observacion:         get(entity.ColObservacion),
		}
		for _, col := range ds.ValuationCols {
			if v := parseNumber(get(col)); v.Valid {
				if rec.Valoraciones == nil {
					rec.Valoraciones = make(map[string]decimal.Decimal, len(ds.ValuationCols))
				}
				rec.Valoraciones[col] = v.Decimal
			}
		}
		for _, col := range ds.ExtraColumns {
			if v := get(col); v != "" {
				if rec.Extra == nil {
					rec.Extra = make(map[string]string, len(ds.ExtraColumns))
				}
				rec.Extra[col] = v
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	if len(ds.Records) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return ds, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber convierte a número; lo que no es numérico queda nulo.
// Acepta coma decimal cuando es el único separador ("12,5").
func parseNumber(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return decimal.NewNullDecimal(d)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1)); err == nil {
			return decimal.NewNullDecimal(d)
		}
	}
	return decimal.NullDecimal{}
}

// parseDate serial de Excel o texto en alguno de dateLayouts; nil si no se reconoce.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 {
			return nil
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		t = t.UTC()
		return &t
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
