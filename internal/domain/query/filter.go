// Package query modela los filtros de búsqueda sobre la tabla de importaciones
// como datos (campo, operador, valor) para que cada adaptador de persistencia
// los compile a SQL parametrizado.
package query

import "github.com/jhoicas/Importaciones-api/internal/domain/entity"

// Field campo filtrable de la tabla de importaciones.
type Field string

const (
	FieldPosicion   Field = "posicion"
	FieldMercaderia Field = "mercaderia"
	FieldImportador Field = "importador"
)

// Column encabezado de la planilla asociado al campo.
func (f Field) Column() string {
	switch f {
	case FieldPosicion:
		return entity.ColPosicionArancelaria
	case FieldMercaderia:
		return entity.ColMercaderia
	case FieldImportador:
		return entity.ColImportador
	default:
		return ""
	}
}

// SuggestField resuelve el parámetro "campo" del autocompletado.
// Cualquier valor distinto de "importador" busca por posición arancelaria.
func SuggestField(campo string) Field {
	if campo == string(FieldImportador) {
		return FieldImportador
	}
	return FieldPosicion
}

// Operator operador de comparación de una condición.
type Operator string

// OpContains el valor de la columna contiene el fragmento (sin distinguir mayúsculas).
const OpContains Operator = "CONTAINS"

// Condition una condición del filtro.
type Condition struct {
	Field Field
	Op    Operator
	Value string
}

// Filter conjunción (AND) de condiciones. Un filtro vacío acepta todas las filas.
type Filter struct {
	Conditions []Condition
}

// Build arma el filtro a partir de los tres fragmentos de texto del buscador.
// Los fragmentos vacíos no restringen; el llamador ya los recibe recortados.
func Build(position, merchandise, importer string) Filter {
	var f Filter
	f.add(FieldPosicion, position)
	f.add(FieldMercaderia, merchandise)
	f.add(FieldImportador, importer)
	return f
}

func (f *Filter) add(field Field, value string) {
	if value == "" {
		return
	}
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: OpContains, Value: value})
}

// IsEmpty indica si el filtro no tiene condiciones.
func (f Filter) IsEmpty() bool {
	return len(f.Conditions) == 0
}

// Direction sentido del ordenamiento por valor unitario.
type Direction int

const (
	Descending Direction = iota // mayores valores unitarios primero
	Ascending                   // menores valores unitarios primero
)
