// Package recipe implements the recipe store on PostgreSQL.
// Reads build their WHERE clause with squirrel; the bulk load uses pgx batches
// and joins the caller's transaction when one is present in the context.
package recipe

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/recipe-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new recipe repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type recipeRow struct {
	ID          int64    `db:"id"`
	Cuisine     *string  `db:"cuisine"`
	Title       *string  `db:"title"`
	Rating      *float64 `db:"rating"`
	PrepTime    *int     `db:"prep_time"`
	CookTime    *int     `db:"cook_time"`
	TotalTime   *int     `db:"total_time"`
	Description *string  `db:"description"`
	Nutrients   *string  `db:"nutrients"`
	Serves      *string  `db:"serves"`
	Calories    *int     `db:"calories"`
}

func (r recipeRow) toDomain() domain.Recipe {
	return domain.Recipe{
		ID:          r.ID,
		Cuisine:     r.Cuisine,
		Title:       r.Title,
		Rating:      r.Rating,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime,
		Description: r.Description,
		Nutrients:   r.Nutrients,
		Serves:      r.Serves,
		Calories:    r.Calories,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns one page of recipes matching f, ordered by rating descending
// with unrated recipes last.
func (r *Repo) Find(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) ([]domain.Recipe, error) {
	query := psql.Select(selectColumns...).
		From(table).
		OrderBy(orderBy...).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	if pred := buildPredicate(f); len(pred) > 0 {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	var rows []recipeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "find recipes")
	}

	recipes := make([]domain.Recipe, len(rows))
	for i, row := range rows {
		recipes[i] = row.toDomain()
	}
	return recipes, nil
}

// Count returns the number of recipes matching f across all pages.
func (r *Repo) Count(ctx context.Context, f domain.RecipeFilter) (int64, error) {
	query := psql.Select("COUNT(*)").From(table)
	if pred := buildPredicate(f); len(pred) > 0 {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "count recipes")
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations (bulk load only)
// ---------------------------------------------------------------------------

// DeleteAll removes every recipe and returns the number of rows deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	sql, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete recipes")
	}
	return tag.RowsAffected(), nil
}

// BulkInsert writes recipes in pgx batches of at most batchSize rows.
// IDs on the input are ignored; the store assigns them.
func (r *Repo) BulkInsert(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error) {
	if len(recipes) == 0 {
		return 0, nil
	}
	if batchSize < 1 {
		batchSize = len(recipes)
	}

	insertSQL, _, err := psql.Insert(table).
		Columns(insertColumns...).
		Values(make([]any, len(insertColumns))...).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}

	var inserted int
	for start := 0; start < len(recipes); start += batchSize {
		end := min(start+batchSize, len(recipes))

		batch := &pgx.Batch{}
		for _, rec := range recipes[start:end] {
			batch.Queue(insertSQL,
				rec.Cuisine, rec.Title, rec.Rating, rec.PrepTime, rec.CookTime,
				rec.TotalTime, rec.Description, rec.Nutrients, rec.Serves, rec.Calories,
			)
		}

		n, err := r.sendBatchExec(ctx, batch)
		inserted += n
		if err != nil {
			return inserted, postgres.MapError(err, fmt.Sprintf("insert recipes %d..%d", start, end-1))
		}
	}

	return inserted, nil
}

// sendBatchExec sends a batch and reads all results, returning total rows affected.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
