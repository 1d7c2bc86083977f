package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
)

func TestBuild_SinFragmentosNoRestringe(t *testing.T) {
	f := query.Build("", "", "")
	assert.True(t, f.IsEmpty(), "sin fragmentos el filtro debe aceptar todas las filas")
}

func TestBuild_ConjuncionEnOrdenFijo(t *testing.T) {
	f := query.Build("8501", "", "ACME")

	assert.Equal(t, []query.Condition{
		{Field: query.FieldPosicion, Op: query.OpContains, Value: "8501"},
		{Field: query.FieldImportador, Op: query.OpContains, Value: "ACME"},
	}, f.Conditions)
}

func TestBuild_TresFragmentos(t *testing.T) {
	f := query.Build("8501", "motor", "ACME")
	assert.Len(t, f.Conditions, 3)
	assert.Equal(t, query.FieldMercaderia, f.Conditions[1].Field)
	assert.Equal(t, "motor", f.Conditions[1].Value)
}

func TestField_Column(t *testing.T) {
	assert.Equal(t, entity.ColPosicionArancelaria, query.FieldPosicion.Column())
	assert.Equal(t, entity.ColMercaderia, query.FieldMercaderia.Column())
	assert.Equal(t, entity.ColImportador, query.FieldImportador.Column())
	assert.Empty(t, query.Field("otro").Column())
}

func TestSuggestField(t *testing.T) {
	assert.Equal(t, query.FieldImportador, query.SuggestField("importador"))
	assert.Equal(t, query.FieldPosicion, query.SuggestField("posicion"))
	assert.Equal(t, query.FieldPosicion, query.SuggestField(""), "por defecto busca por posición")
}
