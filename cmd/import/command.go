package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/recipe-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/recipe-catalog/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/recipe-catalog/internal/app"
	"github.com/heartmarshall/recipe-catalog/internal/config"
	"github.com/heartmarshall/recipe-catalog/internal/service/importer"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "recipe-import",
		Usage:   "Replace the recipe store with the contents of a recipe document",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the recipe document (array or object of recipe objects)",
				Sources: cli.EnvVars("IMPORT_FILE"),
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Rows per insert batch (default from config)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Parse and map the document without writing to the database",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadFrom(cmd.String("config"))
	if err != nil {
		return err
	}
	if f := cmd.String("file"); f != "" {
		cfg.Import.File = f
	}
	if n := cmd.Int("batch-size"); n > 0 {
		cfg.Import.BatchSize = int(n)
	}
	if cfg.Import.File == "" {
		return fmt.Errorf("no recipe document given: set --file or IMPORT_FILE")
	}

	logger := app.NewLogger(cfg.Log)
	out := cmd.Root().Writer

	if cmd.Bool("dry-run") {
		res, err := importer.NewService(logger, nil, nil, nil, cfg.Import.BatchSize).DryRun(ctx, cfg.Import.File)
		if err != nil {
			return err
		}
		printSummary(out, cfg.Import.File, res, true)
		return nil
	}

	pool, err := postgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svc := importer.NewService(logger, recipe.New(pool), postgres.NewTxManager(pool), nil, cfg.Import.BatchSize)
	res, err := svc.Import(ctx, cfg.Import.File)
	if err != nil {
		return err
	}

	printSummary(out, cfg.Import.File, res, false)
	return nil
}

func printSummary(w io.Writer, file string, res importer.Result, dryRun bool) {
	mode := "imported"
	if dryRun {
		mode = "parsed (dry run)"
	}
	fmt.Fprintf(w, "%s %s\n", mode, file)
	fmt.Fprintf(w, "  items:         %d\n", res.Items)
	if !dryRun {
		fmt.Fprintf(w, "  deleted:       %d\n", res.Deleted)
		fmt.Fprintf(w, "  inserted:      %d\n", res.Inserted)
	}
	fmt.Fprintf(w, "  null calories: %d\n", res.NullCalories)
	fmt.Fprintf(w, "  duration:      %s\n", res.Duration.Round(time.Millisecond))
}
