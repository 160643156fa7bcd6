package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recipe-catalog/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the DSN, applies pool settings (max/min conns, lifetimes), pings
// the database for fail-fast validation, and returns the ready pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Connect calls NewPool with exponential backoff, up to cfg.ConnectAttempts
// tries. A malformed DSN is not retried.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if _, err := pgxpool.ParseConfig(cfg.DSN); err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	var pool *pgxpool.Pool
	err := retry.Do(
		func() error {
			p, err := NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database not ready, retrying",
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", cfg.ConnectAttempts, err)
	}

	return pool, nil
}
