package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "Search topics by substring",
	Long: `Returns all topics whose key or tags contain the given substring,
case-insensitively, in topic-key sort order.

An empty substring is a usage error; a search with zero matches is a
valid empty result.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	results, err := queryService.Search(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrInvalidQuery) {
		return errors.New("search substring must not be empty")
	}
	if err != nil {
		return notInitializedHint(err)
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.Entry) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.Entry) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%d samples)\n", i+1, topicStyle.Render(results[i].Topic), len(results[i].Samples))
		if len(results[i].Tags) > 0 {
			cmd.Printf("      %s\n", tagStyle.Render("tags: "+joinTags(results[i].Tags)))
		}
	}
	cmd.Println()

	return nil
}
