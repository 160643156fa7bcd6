// Package recipe serves paginated, filtered reads over the recipe store.
package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

type recipeRepo interface {
	Find(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) ([]domain.Recipe, error)
	Count(ctx context.Context, f domain.RecipeFilter) (int64, error)
}

// Service provides recipe listing and search.
type Service struct {
	recipes recipeRepo
	log     *slog.Logger
}

// NewService creates a new recipe query service.
func NewService(log *slog.Logger, recipes recipeRepo) *Service {
	return &Service{
		recipes: recipes,
		log:     log.With("service", "recipe"),
	}
}

// Page is one window of results. Page and Limit echo the request as given.
type Page struct {
	Page  int
	Limit int
	Total int64
	Data  []View
}

// List returns a page of all recipes, best rated first.
func (s *Service) List(ctx context.Context, page domain.PageRequest) (Page, error) {
	return s.Search(ctx, domain.RecipeFilter{}, page)
}

// Search returns a page of recipes matching every supplied filter.
func (s *Service) Search(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) (Page, error) {
	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	f = f.Normalize()

	rows, err := s.recipes.Find(ctx, f, page)
	if err != nil {
		return Page{}, fmt.Errorf("find recipes: %w", err)
	}

	total, err := s.recipes.Count(ctx, f)
	if err != nil {
		return Page{}, fmt.Errorf("count recipes: %w", err)
	}

	data := make([]View, len(rows))
	for i, r := range rows {
		data[i] = newView(r)
	}

	s.log.DebugContext(ctx, "recipes searched",
		slog.Bool("filtered", !f.IsEmpty()),
		slog.Int("page", page.Page),
		slog.Int("limit", page.Limit),
		slog.Int("returned", len(data)),
		slog.Int64("total", total),
	)

	return Page{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
		Data:  data,
	}, nil
}
