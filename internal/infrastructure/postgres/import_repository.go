package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/sqlbuild"
)

var _ repository.ImportRepository = (*ImportRepo)(nil)

// ImportRepo implementación de ImportRepository sobre PostgreSQL.
type ImportRepo struct {
	pool *pgxpool.Pool
}

// NewImportRepository construye el adaptador de persistencia de importaciones.
func NewImportRepository(pool *pgxpool.Pool) *ImportRepo {
	return &ImportRepo{pool: pool}
}

var copyColumns = []string{
	"id", "despacho", "item", "posicion_arancelaria", "mercaderia", "importador",
	"fob_dolar", "cantidad", "valor_lista", "valor_planilla", "valor_res",
	"oficializacion", "observacion", "extra",
}

// ReplaceAll TRUNCATE + COPY en la misma transacción: los lectores ven la tabla
// anterior o la nueva, nunca una mezcla.
func (r *ImportRepo) ReplaceAll(ctx context.Context, dataset *entity.ImportDataset) error {
	rows := make([][]any, 0, len(dataset.Records))
	for i, rec := range dataset.Records {
		rec.ID = int64(i + 1)
		extra, err := sqlbuild.EncodeExtra(rec.Extra)
		if err != nil {
			return err
		}
		rows = append(rows, []any{
			rec.ID, rec.Despacho, rec.Item, rec.PosicionArancelaria, rec.Mercaderia, rec.Importador,
			rec.FOBDolar, rec.Cantidad,
			valuation(rec, entity.ColValorLista), valuation(rec, entity.ColValorPlanilla), valuation(rec, entity.ColValorRes),
			rec.Oficializacion, rec.Observacion, extra,
		})
	}

	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE importaciones`); err != nil {
			return fmt.Errorf("importaciones.ReplaceAll truncate: %w", err)
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{sqlbuild.TableName}, copyColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("importaciones.ReplaceAll copy: %w", err)
		}
		if n != int64(len(rows)) {
			return fmt.Errorf("importaciones.ReplaceAll: copiadas %d de %d filas", n, len(rows))
		}
		return nil
	})
}

// FindRanked filas del filtro ordenadas por valor unitario, desempate por id.
func (r *ImportRepo) FindRanked(ctx context.Context, f query.Filter, dir query.Direction, limit int) ([]*entity.ImportRecord, error) {
	q, args, err := sqlbuild.Postgres.Ranked(f, dir, limit)
	if err != nil {
		return nil, fmt.Errorf("importaciones.FindRanked: %w", err)
	}
	return r.queryRecords(ctx, "importaciones.FindRanked", q, args...)
}

// Suggest valores distintos del campo que contienen el fragmento (ILIKE).
func (r *ImportRepo) Suggest(ctx context.Context, field query.Field, fragment string, limit int) ([]string, error) {
	q, args, err := sqlbuild.Postgres.Suggest(field, fragment, limit)
	if err != nil {
		return nil, fmt.Errorf("importaciones.Suggest: %w", err)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("importaciones.Suggest: %w", err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("importaciones.Suggest scan: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// UpdateObservation actualiza la observación por DESPACHO + ITEM.
func (r *ImportRepo) UpdateObservation(ctx context.Context, despacho, item, observacion string) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE importaciones SET observacion = $1 WHERE despacho = $2 AND item = $3`,
		observacion, despacho, item,
	)
	if err != nil {
		return 0, fmt.Errorf("importaciones.UpdateObservation: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListAll toda la tabla en orden de carga.
func (r *ImportRepo) ListAll(ctx context.Context) ([]*entity.ImportRecord, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", sqlbuild.SelectColumns, sqlbuild.TableName)
	return r.queryRecords(ctx, "importaciones.ListAll", q)
}

// Count cantidad de filas cargadas.
func (r *ImportRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM importaciones`).Scan(&n); err != nil {
		return 0, fmt.Errorf("importaciones.Count: %w", err)
	}
	return n, nil
}

func (r *ImportRepo) queryRecords(ctx context.Context, op, q string, args ...any) ([]*entity.ImportRecord, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	results := []*entity.ImportRecord{}
	for rows.Next() {
		var (
			rec                  entity.ImportRecord
			lista, planilla, res decimal.NullDecimal
			oficializacion       *time.Time
			extra                []byte
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Despacho,
			&rec.Item,
			&rec.PosicionArancelaria,
			&rec.Mercaderia,
			&rec.Importador,
			&rec.FOBDolar,
			&rec.Cantidad,
			&lista,
			&planilla,
			&res,
			&oficializacion,
			&rec.Observacion,
			&extra,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		setValuation(&rec, entity.ColValorLista, lista)
		setValuation(&rec, entity.ColValorPlanilla, planilla)
		setValuation(&rec, entity.ColValorRes, res)
		if oficializacion != nil {
			t := oficializacion.UTC()
			rec.Oficializacion = &t
		}
		if rec.Extra, err = sqlbuild.DecodeExtra(extra); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return results, nil
}

func valuation(rec *entity.ImportRecord, col string) decimal.NullDecimal {
	v, ok := rec.Valoraciones[col]
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v)
}

func setValuation(rec *entity.ImportRecord, col string, v decimal.NullDecimal) {
	if !v.Valid {
		return
	}
	if rec.Valoraciones == nil {
		rec.Valoraciones = make(map[string]decimal.Decimal, len(entity.ValuationColumns))
	}
	rec.Valoraciones[col] = v.Decimal
}
