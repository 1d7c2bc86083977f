package sqlbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/sqlbuild"
)

func TestWhere_FiltroVacioAceptaTodo(t *testing.T) {
	where, args, err := sqlbuild.Postgres.Where(query.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestWhere_PostgresParametrizado(t *testing.T) {
	where, args, err := sqlbuild.Postgres.Where(query.Build("8501", "", "ACME"))
	require.NoError(t, err)
	assert.Equal(t,
		`posicion_arancelaria ILIKE $1 ESCAPE '\' AND importador ILIKE $2 ESCAPE '\'`,
		where)
	assert.Equal(t, []any{"%8501%", "%ACME%"}, args)
}

func TestWhere_SQLiteParametrizado(t *testing.T) {
	where, args, err := sqlbuild.SQLite.Where(query.Build("", "motor", ""))
	require.NoError(t, err)
	assert.Equal(t, `mercaderia LIKE ? ESCAPE '\'`, where)
	assert.Equal(t, []any{"%motor%"}, args)
}

func TestWhere_NoInterpolaEntradaDelUsuario(t *testing.T) {
	evil := `x' OR '1'='1`
	where, args, err := sqlbuild.SQLite.Where(query.Build(evil, "", ""))
	require.NoError(t, err)
	assert.NotContains(t, where, evil)
	assert.Equal(t, []any{"%" + evil + "%"}, args)
}

func TestWhere_CampoDesconocido(t *testing.T) {
	f := query.Filter{Conditions: []query.Condition{{Field: "pais", Op: query.OpContains, Value: "AR"}}}
	_, _, err := sqlbuild.SQLite.Where(f)
	assert.Error(t, err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, sqlbuild.EscapeLike("100%"))
	assert.Equal(t, `a\_b`, sqlbuild.EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, sqlbuild.EscapeLike(`c:\dir`))
}

func TestRanked_OrdenYDesempate(t *testing.T) {
	q, args, err := sqlbuild.Postgres.Ranked(query.Build("8501", "", ""), query.Descending, 3)
	require.NoError(t, err)
	assert.Contains(t, q, "ORDER BY ("+sqlbuild.UnitValueExpr+") DESC, id ASC LIMIT $2")
	assert.Equal(t, []any{"%8501%", 3}, args)

	q, args, err = sqlbuild.SQLite.Ranked(query.Filter{}, query.Ascending, 1)
	require.NoError(t, err)
	assert.Contains(t, q, "WHERE 1=1 ORDER BY ("+sqlbuild.UnitValueExpr+") ASC, id ASC LIMIT ?")
	assert.Equal(t, []any{1}, args)
}

func TestSuggest(t *testing.T) {
	q, args, err := sqlbuild.Postgres.Suggest(query.FieldImportador, "acm", 10)
	require.NoError(t, err)
	assert.Contains(t, q, "SELECT DISTINCT importador FROM importaciones")
	assert.Contains(t, q, `importador ILIKE $1 ESCAPE '\'`)
	assert.Contains(t, q, "LIMIT $2")
	assert.Equal(t, []any{"%acm%", 10}, args)
}
