package spreadsheet

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/ports"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
)

// ExportSheet nombre de la hoja exportada.
const ExportSheet = "Datos"

var _ ports.SpreadsheetWriter = (*Writer)(nil)

// Writer genera el xlsx con toda la tabla.
type Writer struct{}

// NewWriter construye el exportador.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteXLSX una hoja "Datos" con los encabezados originales. Las valoraciones
// se incluyen si algún registro las tiene; las columnas extra van al final en
// orden alfabético.
func (w *Writer) WriteXLSX(records []*entity.ImportRecord) ([]byte, error) {
	header := exportHeader(records)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("spreadsheet.WriteXLSX: %w", err)
	}

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &head); err != nil {
		return nil, fmt.Errorf("spreadsheet.WriteXLSX header: %w", err)
	}

	for i, rec := range records {
		row := make([]interface{}, len(header))
		for j, col := range header {
			row[j] = cellValue(rec, col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("spreadsheet.WriteXLSX: %w", err)
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("spreadsheet.WriteXLSX fila %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet.WriteXLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func exportHeader(records []*entity.ImportRecord) []string {
	vals := make(map[string]bool, len(entity.ValuationColumns))
	extras := make(map[string]bool)
	for _, r := range records {
		for col := range r.Valoraciones {
			vals[col] = true
		}
		for col := range r.Extra {
			extras[col] = true
		}
	}

	header := []string{
		entity.ColDespacho, entity.ColItem, entity.ColPosicionArancelaria, entity.ColMercaderia,
		entity.ColImportador, entity.ColFOBDolar, entity.ColCantidad,
	}
	for _, col := range entity.ValuationColumns {
		if vals[col] {
			header = append(header, col)
		}
	}
	header = append(header, entity.ColOficializacion, entity.ColObservacion)

	extraCols := make([]string, 0, len(extras))
	for col := range extras {
		extraCols = append(extraCols, col)
	}
	sort.Strings(extraCols)
	return append(header, extraCols...)
}

func cellValue(r *entity.ImportRecord, col string) interface{} {
	switch col {
	case entity.ColDespacho:
		return r.Despacho
	case entity.ColItem:
		return r.Item
	case entity.ColPosicionArancelaria:
		return r.PosicionArancelaria
	case entity.ColMercaderia:
		return r.Mercaderia
	case entity.ColImportador:
		return r.Importador
	case entity.ColFOBDolar:
		return number(r.FOBDolar)
	case entity.ColCantidad:
		return number(r.Cantidad)
	case entity.ColValorLista, entity.ColValorPlanilla, entity.ColValorRes:
		if v, ok := r.Valoraciones[col]; ok {
			return v.InexactFloat64()
		}
		return nil
	case entity.ColOficializacion:
		if r.Oficializacion == nil {
			return nil
		}
		return *r.Oficializacion
	case entity.ColObservacion:
		return r.Observacion
	default:
		return r.Extra[col]
	}
}

func number(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}
