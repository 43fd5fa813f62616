package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-ingest the document whenever it changes",
	Long: `Ingests the document, then watches it for changes and rebuilds the
index on every write. Each rebuild swaps in a complete new index, so
queries served concurrently (e.g. via 'snipdex mcp serve') never see a
partial state.

Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	path := args[0]

	report, err := ingestService.IngestFile(ctx, path)
	if err != nil {
		return fmt.Errorf("initial ingest failed: %w", err)
	}
	cmd.Printf("Indexed %d topics, watching %s\n", report.Topics, path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace the
	// file by rename, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("Change detected: %s", event)
			report, err := ingestService.IngestFile(ctx, path)
			if err != nil {
				// The document may be mid-save; keep the old index.
				cmd.PrintErrf("re-ingest failed: %v\n", err)
				continue
			}
			cmd.Printf("Rebuilt: %d topics (%d warnings)\n", report.Topics, len(report.Warnings))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}
