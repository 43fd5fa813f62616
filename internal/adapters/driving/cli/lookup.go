package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/core/domain"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [topic]",
	Short: "Show one topic by its key",
	Long: `Returns the entry for an exact topic-key match. The argument is
normalized with the same rules as ingestion, so both "data-types" and
"Data Types" resolve to the same entry.

An unknown topic is a normal negative result, reported as "no such
topic" with a non-error exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output the entry as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	entry, err := queryService.Lookup(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No such topic: %s\n", args[0])
		return nil
	}
	if errors.Is(err, domain.ErrInvalidQuery) {
		return fmt.Errorf("invalid topic key: %q", args[0])
	}
	if err != nil {
		return notInitializedHint(err)
	}

	if lookupJSON {
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printEntry(cmd, entry)
	return nil
}
