// Command recipe-import replaces the recipe store with the contents of a
// recipe document.
//
// Flags:
//
//	--file        path to the recipe document (env IMPORT_FILE)
//	--batch-size  rows per insert batch
//	--dry-run     parse and map without writing to the database
//	--config      path to the YAML config file (env CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "recipe-import: %v\n", err)
		os.Exit(1)
	}
}
