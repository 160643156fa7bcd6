// Package importer loads a recipe document into the store, replacing
// whatever it held before.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

type recipeStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs recipe imports.
type Service struct {
	store     recipeStore
	tx        txManager
	metrics   *Metrics
	batchSize int
	log       *slog.Logger
}

// NewService creates a new import service. metrics may be nil.
func NewService(
	log *slog.Logger,
	store recipeStore,
	tx txManager,
	metrics *Metrics,
	batchSize int,
) *Service {
	return &Service{
		store:     store,
		tx:        tx,
		metrics:   metrics,
		batchSize: batchSize,
		log:       log.With("service", "importer"),
	}
}

// Result summarizes one import run.
type Result struct {
	Items        int
	Inserted     int
	Deleted      int64
	NullCalories int
	Duration     time.Duration
}

// Import parses the document at path and replaces the store contents with
// it in a single transaction. Parse failures leave the store untouched.
func (s *Service) Import(ctx context.Context, path string) (res Result, err error) {
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		s.metrics.observe(res, err)
	}()

	recipes, err := s.load(ctx, path)
	if err != nil {
		return Result{}, err
	}
	res.Items = len(recipes)
	res.NullCalories = countNullCalories(recipes)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err := s.store.DeleteAll(ctx)
		if err != nil {
			return err
		}
		inserted, err := s.store.BulkInsert(ctx, recipes, s.batchSize)
		if err != nil {
			return err
		}
		res.Deleted = deleted
		res.Inserted = inserted
		return nil
	})
	if err != nil {
		return Result{Items: res.Items, NullCalories: res.NullCalories}, fmt.Errorf("replace recipes: %w", err)
	}

	s.log.InfoContext(ctx, "recipes imported",
		slog.String("file", path),
		slog.Int("items", res.Items),
		slog.Int("inserted", res.Inserted),
		slog.Int64("deleted", res.Deleted),
		slog.Int("null_calories", res.NullCalories),
		slog.Duration("duration", time.Since(start)),
	)

	return res, nil
}

// DryRun parses and maps the document without touching the store.
func (s *Service) DryRun(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	recipes, err := s.load(ctx, path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Items:        len(recipes),
		NullCalories: countNullCalories(recipes),
		Duration:     time.Since(start),
	}, nil
}

// ImportBestEffort runs Import and logs a failure instead of returning it.
// The store keeps its previous contents when the import fails.
func (s *Service) ImportBestEffort(ctx context.Context, path string) {
	if _, err := s.Import(ctx, path); err != nil {
		s.log.ErrorContext(ctx, "recipe import failed",
			slog.String("file", path),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) load(ctx context.Context, path string) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipe document: %w", err)
	}
	defer f.Close()

	items, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return MapItems(items), nil
}

func countNullCalories(recipes []domain.Recipe) int {
	var n int
	for _, r := range recipes {
		if r.Calories == nil {
			n++
		}
	}
	return n
}
