package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/adapters/driven/storage/jsonfile"
	"github.com/snipdex/snipdex/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the index to a portable JSON snapshot",
	Long: `Writes the current index to a JSON file, one record per topic.
The file is written atomically and can be re-loaded with 'snipdex import'
without re-parsing the source document.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Rebuild the index from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	ctx := cmd.Context()
	topics, err := queryService.ListTopics(ctx)
	if err != nil {
		return notInitializedHint(err)
	}

	var entries []domain.Entry
	for topic := range topics {
		entry, err := queryService.Lookup(ctx, topic)
		if err != nil {
			return fmt.Errorf("reading topic %q: %w", topic, err)
		}
		entries = append(entries, *entry)
	}

	store := jsonfile.NewStore(args[0])
	if err := store.SaveIndex(ctx, entries); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d topics to %s\n", len(entries), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	entries, err := jsonfile.NewStore(args[0]).LoadIndex(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("snapshot %s contains no entries", args[0])
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if err := ingestService.ImportEntries(ctx, entries); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d topics from %s\n", len(entries), args[0])
	return nil
}
