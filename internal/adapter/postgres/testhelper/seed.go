package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// SeedRecipe inserts r directly (bypassing the repository) and returns it
// with the generated ID filled in.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, r domain.Recipe) domain.Recipe {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO recipes
		   (cuisine, title, rating, prep_time, cook_time, total_time, description, nutrients, serves, calories)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		r.Cuisine, r.Title, r.Rating, r.PrepTime, r.CookTime, r.TotalTime,
		r.Description, r.Nutrients, r.Serves, r.Calories,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: seed recipe: %v", err)
	}

	return r
}

// CountRecipes returns the number of rows in the recipes table.
func CountRecipes(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var n int64
	if err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		t.Fatalf("testhelper: count recipes: %v", err)
	}
	return n
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
