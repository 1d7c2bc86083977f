package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Encabezados de la planilla de importaciones (tal como vienen en el Excel).
const (
	ColDespacho            = "DESPACHO"
	ColItem                = "ITEM"
	ColPosicionArancelaria = "POSICION ARANCELARIA"
	ColMercaderia          = "MERCADERIA"
	ColImportador          = "IMPORTADOR"
	ColFOBDolar            = "FOB DOLAR"
	ColCantidad            = "CANTIDAD"
	ColValorLista          = "VALOR LISTA"
	ColValorPlanilla       = "VALOR PLANILLA"
	ColValorRes            = "VALOR RES"
	ColOficializacion      = "OFICIALIZACION"
	ColObservacion         = "OBSERVACION"
)

// RequiredColumns columnas sin las cuales no se acepta una carga.
var RequiredColumns = []string{ColPosicionArancelaria, ColFOBDolar}

// ValuationColumns valoraciones auxiliares opcionales; pueden faltar según el archivo.
var ValuationColumns = []string{ColValorLista, ColValorPlanilla, ColValorRes}

// SchemaColumns columnas conocidas, en el orden en que se exportan.
var SchemaColumns = []string{
	ColDespacho, ColItem, ColPosicionArancelaria, ColMercaderia, ColImportador,
	ColFOBDolar, ColCantidad, ColValorLista, ColValorPlanilla, ColValorRes,
	ColOficializacion, ColObservacion,
}

// IsSchemaColumn indica si el encabezado pertenece al esquema fijo de la tabla.
func IsSchemaColumn(name string) bool {
	for _, c := range SchemaColumns {
		if c == name {
			return true
		}
	}
	return false
}

// ImportRecord una línea de un despacho de importación.
// DESPACHO + ITEM forman la clave natural usada para editar la observación.
type ImportRecord struct {
	ID                  int64 // orden de la fila en el archivo cargado (desempate del ranking)
	Despacho            string
	Item                string
	PosicionArancelaria string
	Mercaderia          string
	Importador          string
	FOBDolar            decimal.NullDecimal
	Cantidad            decimal.NullDecimal
	Valoraciones        map[string]decimal.Decimal // solo las columnas presentes y no nulas
	Oficializacion      *time.Time
	Observacion         string
	Extra               map[string]string // columnas del archivo fuera del esquema
}

// UnitValue valor unitario FOB / CANTIDAD; cero si la cantidad es nula o no positiva.
// Un FOB nulo cuenta como cero. Debe coincidir con la expresión SQL del ranking.
func UnitValue(fob, cantidad decimal.NullDecimal) decimal.Decimal {
	if !cantidad.Valid || !cantidad.Decimal.IsPositive() {
		return decimal.Zero
	}
	if !fob.Valid {
		return decimal.Zero
	}
	return fob.Decimal.Div(cantidad.Decimal)
}

// UnitValue valor unitario del registro.
func (r *ImportRecord) UnitValue() decimal.Decimal {
	return UnitValue(r.FOBDolar, r.Cantidad)
}

// Valuation devuelve la valoración auxiliar indicada, o cero si no está presente.
func (r *ImportRecord) Valuation(col string) decimal.Decimal {
	if v, ok := r.Valoraciones[col]; ok {
		return v
	}
	return decimal.Zero
}

// ImportDataset contenido completo de un archivo cargado.
type ImportDataset struct {
	Records       []*ImportRecord
	Columns       []string // encabezados en el orden del archivo
	ValuationCols []string // valoraciones auxiliares presentes en el archivo
	ExtraColumns  []string // encabezados fuera del esquema, en orden
}
