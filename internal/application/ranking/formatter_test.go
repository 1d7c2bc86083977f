package ranking_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
)

func TestFormatRecord_Full(t *testing.T) {
	fecha := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	r := &entity.ImportRecord{
		Despacho:            "23001IC04000123A",
		Item:                "2",
		PosicionArancelaria: "8501.10.11",
		Mercaderia:          "MOTOR",
		Importador:          "ACME SA",
		FOBDolar:            decimal.NewNullDecimal(decimal.RequireFromString("1234.5")),
		Cantidad:            decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Valoraciones:        map[string]decimal.Decimal{entity.ColValorLista: decimal.NewFromInt(2)},
		Oficializacion:      &fecha,
		Observacion:         "revisar",
	}

	out := ranking.FormatRecord(r)

	assert.Equal(t, "$1,234.50", out.FOBFmt)
	assert.Equal(t, "1,000", out.CantidadFmt)
	assert.Equal(t, "$1.23", out.ValorUnitarioFmt)
	assert.Equal(t, "05/03/2023", out.Oficializacion)
	assert.Equal(t, "revisar", out.Observacion)
	assert.Equal(t, "$2.00", out.ValoracionesFmt["VALOR_LISTA_FMT"])
	assert.Equal(t, "$0.00", out.ValoracionesFmt["VALOR_PLANILLA_FMT"])
	assert.Equal(t, "$0.00", out.ValoracionesFmt["VALOR_RES_FMT"])
	assert.Len(t, out.Valoraciones, 1)
}

func TestFormatRecord_Nulls(t *testing.T) {
	out := ranking.FormatRecord(&entity.ImportRecord{Despacho: "X"})

	assert.Equal(t, "$0.00", out.FOBFmt)
	assert.Equal(t, "0", out.CantidadFmt)
	assert.Equal(t, "$0.00", out.ValorUnitarioFmt)
	assert.Empty(t, out.Oficializacion)
	assert.Equal(t, "", out.Observacion)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "OFICIALIZACION")
	assert.Equal(t, "", m["OBSERVACION"])
	assert.Nil(t, m["FOB DOLAR"])
	assert.Equal(t, "$0.00", m["VALOR_RES_FMT"])
	assert.NotContains(t, m, "VALOR RES")
}

func TestFormatRecord_JSONKeys(t *testing.T) {
	r := &entity.ImportRecord{
		Despacho: "D1",
		Item:     "1",
		FOBDolar: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Cantidad: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Extra:    map[string]string{"ADUANA": "BUENOS AIRES", "DESPACHO": "pisado"},
	}

	raw, err := json.Marshal(ranking.FormatRecord(r))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "D1", m["DESPACHO"])
	assert.Equal(t, "BUENOS AIRES", m["ADUANA"])
	assert.Equal(t, "$10.00", m["VALOR_UNITARIO_FMT"])
	assert.Equal(t, "$100.00", m["FOB_FMT"])
	assert.Equal(t, "10", m["CANTIDAD_FMT"])
	assert.Contains(t, m, "POSICION ARANCELARIA")
}

func TestFmtKey(t *testing.T) {
	assert.Equal(t, "VALOR_PLANILLA_FMT", ranking.FmtKey(entity.ColValorPlanilla))
}

func TestFormatRecords_PreservesOrder(t *testing.T) {
	out := ranking.FormatRecords([]*entity.ImportRecord{{Despacho: "2"}, {Despacho: "1"}})
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].Despacho)
	assert.Equal(t, "1", out[1].Despacho)
}
