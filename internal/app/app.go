package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/recipe-catalog/internal/adapter/postgres"
	recipestore "github.com/heartmarshall/recipe-catalog/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/recipe-catalog/internal/config"
	"github.com/heartmarshall/recipe-catalog/internal/service/importer"
	"github.com/heartmarshall/recipe-catalog/internal/service/recipe"
	"github.com/heartmarshall/recipe-catalog/internal/transport/middleware"
	"github.com/heartmarshall/recipe-catalog/internal/transport/rest"
)

// Run is the server entry point. It connects to the database, brings the
// schema up to date, runs the startup import and serves HTTP until ctx is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := recipestore.New(pool)
	imports := importer.NewService(logger, store, postgres.NewTxManager(pool), importer.NewMetrics(reg), cfg.Import.BatchSize)

	if cfg.Import.OnStartup {
		runStartupImport(ctx, imports, cfg.Import)
	} else {
		logger.Info("startup import disabled")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := NewRouter(RouterDeps{
		Logger:            logger,
		Recipes:           rest.NewRecipeHandler(recipe.NewService(logger, store), logger),
		Health:            rest.NewHealthHandler(pool, BuildVersion()),
		Gatherer:          reg,
		Metrics:           middleware.NewMetrics(reg),
		CORS:              cfg.CORS,
		Limiter:           limiter,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

func runStartupImport(ctx context.Context, imports *importer.Service, cfg config.ImportConfig) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	imports.ImportBestEffort(ctx, cfg.File)
}

// serve runs srv until ctx is canceled or the listener fails, then shuts it
// down gracefully within shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
