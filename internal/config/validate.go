package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("database.connect_attempts must be >= 1 (got %d)", c.Database.ConnectAttempts)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 1 when enabled (got %d)",
			c.RateLimit.RequestsPerMinute)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (i *ImportConfig) validate() error {
	if i.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", i.BatchSize)
	}
	if i.OnStartup && strings.TrimSpace(i.File) == "" {
		return fmt.Errorf("file is required when on_startup is enabled")
	}
	if i.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", i.Timeout)
	}
	return nil
}
