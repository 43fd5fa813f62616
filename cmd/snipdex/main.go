// Command snipdex indexes a heading-delimited reference document and
// serves topic lookups from the CLI, an interactive TUI, or an MCP
// server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/snipdex/snipdex/internal/adapters/driven/config/file"
	"github.com/snipdex/snipdex/internal/adapters/driven/storage/memory"
	"github.com/snipdex/snipdex/internal/adapters/driven/storage/sqlite"
	"github.com/snipdex/snipdex/internal/adapters/driving/cli"
	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/services"
	"github.com/snipdex/snipdex/internal/logger"
	"github.com/snipdex/snipdex/internal/markdown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	snapshots, err := sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer snapshots.Close()

	var parserOpts []markdown.Option
	if level := configStore.GetInt(file.KeyHeadingLevel); level > 0 {
		parserOpts = append(parserOpts, markdown.WithHeadingLevel(level))
	}
	parser := markdown.New(parserOpts...)

	index := memory.NewIndexStore()
	queryService := services.NewQueryService(index)
	ingestService := services.NewIngestService(parser, index, snapshots)

	// Load the persisted index, if any. A missing snapshot just means
	// no ingest has happened yet.
	if err := ingestService.Restore(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("Could not restore index snapshot: %v", err)
	}

	cli.SetServices(queryService, ingestService)
	cli.SetConfigStore(configStore)
	return cli.ExecuteContext(ctx)
}
