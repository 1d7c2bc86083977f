// Package sqlbuild compila los filtros del dominio a SQL parametrizado para la
// tabla de importaciones. Los valores del usuario nunca se interpolan en el
// texto de la consulta: siempre viajan como parámetros.
package sqlbuild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Importaciones-api/internal/domain/query"
)

// TableName tabla única con las líneas de importación.
const TableName = "importaciones"

// SelectColumns columnas leídas por los adaptadores, en el orden en que se escanean.
const SelectColumns = `id, despacho, item, posicion_arancelaria, mercaderia, importador,
	fob_dolar, cantidad, valor_lista, valor_planilla, valor_res,
	oficializacion, observacion, extra`

// UnitValueExpr valor unitario con protección contra división por cero.
// Debe mantenerse igual a entity.UnitValue.
const UnitValueExpr = `CASE WHEN cantidad > 0 THEN COALESCE(fob_dolar, 0) / cantidad ELSE 0 END`

var fieldColumns = map[query.Field]string{
	query.FieldPosicion:   "posicion_arancelaria",
	query.FieldMercaderia: "mercaderia",
	query.FieldImportador: "importador",
}

// Dialect diferencias entre motores: marcador de parámetro y operador LIKE.
type Dialect struct {
	Name        string
	Like        string
	placeholder func(n int) string
}

var (
	// Postgres usa $1, $2… e ILIKE para comparar sin distinguir mayúsculas.
	Postgres = Dialect{Name: "postgres", Like: "ILIKE", placeholder: func(n int) string { return "$" + strconv.Itoa(n) }}
	// SQLite usa ? y su LIKE ya ignora mayúsculas en ASCII.
	SQLite = Dialect{Name: "sqlite", Like: "LIKE", placeholder: func(int) string { return "?" }}
)

// Column nombre de la columna SQL de un campo filtrable.
func Column(f query.Field) (string, error) {
	col, ok := fieldColumns[f]
	if !ok {
		return "", fmt.Errorf("sqlbuild: campo desconocido %q", f)
	}
	return col, nil
}

// EscapeLike escapa los comodines de LIKE para que el fragmento se compare literalmente.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern patrón LIKE de "contiene".
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// Where compila el filtro a una cláusula WHERE (sin la palabra clave) y sus argumentos.
// Un filtro vacío produce "1=1".
func (d Dialect) Where(f query.Filter) (string, []any, error) {
	if f.IsEmpty() {
		return "1=1", nil, nil
	}
	parts := make([]string, 0, len(f.Conditions))
	args := make([]any, 0, len(f.Conditions))
	for _, c := range f.Conditions {
		col, err := Column(c.Field)
		if err != nil {
			return "", nil, err
		}
		if c.Op != query.OpContains {
			return "", nil, fmt.Errorf("sqlbuild: operador no soportado %q", c.Op)
		}
		args = append(args, ContainsPattern(c.Value))
		parts = append(parts, fmt.Sprintf(`%s %s %s ESCAPE '\'`, col, d.Like, d.placeholder(len(args))))
	}
	return strings.Join(parts, " AND "), args, nil
}

// Ranked consulta de las `limit` filas con mayor o menor valor unitario.
// El desempate por id mantiene el resultado estable entre llamadas.
func (d Dialect) Ranked(f query.Filter, dir query.Direction, limit int) (string, []any, error) {
	where, args, err := d.Where(f)
	if err != nil {
		return "", nil, err
	}
	order := "DESC"
	if dir == query.Ascending {
		order = "ASC"
	}
	args = append(args, limit)
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY (%s) %s, id ASC LIMIT %s",
		SelectColumns, TableName, where, UnitValueExpr, order, d.placeholder(len(args)))
	return q, args, nil
}

// Suggest consulta de valores distintos de un campo que contienen el fragmento.
func (d Dialect) Suggest(field query.Field, fragment string, limit int) (string, []any, error) {
	col, err := Column(field)
	if err != nil {
		return "", nil, err
	}
	q := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s IS NOT NULL AND %[1]s %[3]s %[4]s ESCAPE '\' ORDER BY %[1]s LIMIT %[5]s`,
		col, TableName, d.Like, d.placeholder(1), d.placeholder(2))
	return q, []any{ContainsPattern(fragment), limit}, nil
}
