package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/spreadsheet"
)

func exportSample() []*entity.ImportRecord {
	fecha := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	return []*entity.ImportRecord{
		{
			Despacho:            "D1",
			Item:                "1",
			PosicionArancelaria: "8501.10",
			Mercaderia:          "MOTOR",
			Importador:          "ACME",
			FOBDolar:            decimal.NewNullDecimal(decimal.NewFromInt(100)),
			Cantidad:            decimal.NewNullDecimal(decimal.NewFromInt(10)),
			Valoraciones:        map[string]decimal.Decimal{entity.ColValorRes: decimal.NewFromInt(7)},
			Oficializacion:      &fecha,
			Observacion:         "revisado",
			Extra:               map[string]string{"ZONA": "SUR", "ADUANA": "BS AS"},
		},
		{
			Despacho:            "D2",
			Item:                "1",
			PosicionArancelaria: "8471.30",
			FOBDolar:            decimal.NewNullDecimal(decimal.NewFromInt(50)),
		},
	}
}

func TestWriteXLSX_Layout(t *testing.T) {
	content, err := spreadsheet.NewWriter().WriteXLSX(exportSample())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{spreadsheet.ExportSheet}, f.GetSheetList())

	rows, err := f.GetRows(spreadsheet.ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"DESPACHO", "ITEM", "POSICION ARANCELARIA", "MERCADERIA", "IMPORTADOR",
		"FOB DOLAR", "CANTIDAD", "VALOR RES", "OFICIALIZACION", "OBSERVACION",
		"ADUANA", "ZONA",
	}, rows[0])
	assert.Equal(t, "D1", rows[1][0])
	assert.Equal(t, "revisado", rows[1][9])
	assert.Equal(t, "SUR", rows[1][11])
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	content, err := spreadsheet.NewWriter().WriteXLSX(exportSample())
	require.NoError(t, err)

	ds, err := spreadsheet.NewParser().Parse("datos_exportados.xlsx", bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	first := ds.Records[0]
	assert.Equal(t, "D1", first.Despacho)
	assert.True(t, first.UnitValue().Equal(decimal.NewFromInt(10)))
	assert.True(t, first.Valuation(entity.ColValorRes).Equal(decimal.NewFromInt(7)))
	require.NotNil(t, first.Oficializacion)
	assert.Equal(t, 5, first.Oficializacion.Day())
	assert.Equal(t, "BS AS", first.Extra["ADUANA"])

	second := ds.Records[1]
	assert.False(t, second.Cantidad.Valid)
	assert.Nil(t, second.Oficializacion)
}

func TestWriteXLSX_Empty(t *testing.T) {
	content, err := spreadsheet.NewWriter().WriteXLSX(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
