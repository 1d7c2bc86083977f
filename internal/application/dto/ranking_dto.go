package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ── Entrada ───────────────────────────────────────────────────────────────────

// RankingRequest fragmentos de búsqueda; vacío = sin filtro en ese campo.
type RankingRequest struct {
	Posicion   string `json:"posicion" query:"posicion"`
	Mercaderia string `json:"mercaderia" query:"mercaderia"`
	Importador string `json:"importador" query:"importador"`
}

// Normalize recorta espacios en los tres fragmentos.
func (r *RankingRequest) Normalize() {
	r.Posicion = strings.TrimSpace(r.Posicion)
	r.Mercaderia = strings.TrimSpace(r.Mercaderia)
	r.Importador = strings.TrimSpace(r.Importador)
}

// ── Salida ────────────────────────────────────────────────────────────────────

// RecordDTO registro listo para mostrar: valores crudos más sus versiones _FMT.
// Se serializa plano, con los encabezados originales como claves.
type RecordDTO struct {
	Despacho            string
	Item                string
	PosicionArancelaria string
	Mercaderia          string
	Importador          string
	FOBDolar            decimal.NullDecimal
	Cantidad            decimal.NullDecimal
	ValorUnitario       decimal.Decimal
	Valoraciones        map[string]decimal.Decimal // crudas, solo las presentes
	Oficializacion      string                     // dd/mm/aaaa; vacío si no hay fecha
	Observacion         string
	Extra               map[string]string

	ValorUnitarioFmt string
	FOBFmt           string
	CantidadFmt      string
	ValoracionesFmt  map[string]string // VALOR_LISTA_FMT, VALOR_PLANILLA_FMT, VALOR_RES_FMT
}

// MarshalJSON aplana el registro en un objeto con las claves de la planilla.
func (r RecordDTO) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 16+len(r.Extra))
	for k, v := range r.Extra {
		out[k] = v
	}
	out["DESPACHO"] = r.Despacho
	out["ITEM"] = r.Item
	out["POSICION ARANCELARIA"] = r.PosicionArancelaria
	out["MERCADERIA"] = r.Mercaderia
	out["IMPORTADOR"] = r.Importador
	out["FOB DOLAR"] = r.FOBDolar
	out["CANTIDAD"] = r.Cantidad
	out["VALOR_UNITARIO"] = r.ValorUnitario
	for k, v := range r.Valoraciones {
		out[k] = v
	}
	if r.Oficializacion != "" {
		out["OFICIALIZACION"] = r.Oficializacion
	}
	out["OBSERVACION"] = r.Observacion
	out["VALOR_UNITARIO_FMT"] = r.ValorUnitarioFmt
	out["FOB_FMT"] = r.FOBFmt
	out["CANTIDAD_FMT"] = r.CantidadFmt
	for k, v := range r.ValoracionesFmt {
		out[k] = v
	}
	return json.Marshal(out)
}

// RankingResultDTO los N de mayor y de menor valor unitario.
type RankingResultDTO struct {
	High []RecordDTO `json:"high"`
	Low  []RecordDTO `json:"low"`
}
