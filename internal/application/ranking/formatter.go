package ranking

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/pkg/format"
)

// FmtKey clave _FMT de una valoración auxiliar ("VALOR LISTA" -> "VALOR_LISTA_FMT").
func FmtKey(col string) string {
	return strings.ReplaceAll(col, " ", "_") + "_FMT"
}

// FormatRecord transforma un registro en su versión para mostrar. No falla con nulos:
// números ausentes se muestran como cero, la observación como "" y la fecha se omite.
func FormatRecord(rec *entity.ImportRecord) dto.RecordDTO {
	unit := rec.UnitValue()
	out := dto.RecordDTO{
		Despacho:            rec.Despacho,
		Item:                rec.Item,
		PosicionArancelaria: rec.PosicionArancelaria,
		Mercaderia:          rec.Mercaderia,
		Importador:          rec.Importador,
		FOBDolar:            rec.FOBDolar,
		Cantidad:            rec.Cantidad,
		ValorUnitario:       unit,
		Valoraciones:        make(map[string]decimal.Decimal, len(rec.Valoraciones)),
		Observacion:         rec.Observacion,
		Extra:               rec.Extra,
		ValorUnitarioFmt:    format.Money(unit),
		FOBFmt:              format.NullMoney(rec.FOBDolar),
		CantidadFmt:         format.NullCount(rec.Cantidad),
		ValoracionesFmt:     make(map[string]string, len(entity.ValuationColumns)),
	}
	if rec.Oficializacion != nil {
		out.Oficializacion = format.Date(*rec.Oficializacion)
	}
	for _, col := range entity.ValuationColumns {
		if v, ok := rec.Valoraciones[col]; ok {
			out.Valoraciones[col] = v
		}
		out.ValoracionesFmt[FmtKey(col)] = format.Money(rec.Valuation(col))
	}
	return out
}

// FormatRecords aplica FormatRecord preservando el orden.
func FormatRecords(recs []*entity.ImportRecord) []dto.RecordDTO {
	out := make([]dto.RecordDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, FormatRecord(r))
	}
	return out
}
