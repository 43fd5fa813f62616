package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Build the index from a reference document",
	Long: `Parses a heading-delimited, fenced-code-block reference document,
normalizes its sections into topics and rebuilds the index wholesale.
With no argument, ingests the document configured as 'kb.path'.

Sections whose headings normalize to the same topic key are merged:
their descriptions and code samples are appended, never overwritten.
Recoverable problems (an unterminated code fence, a heading with no
indexable text) skip the affected section and are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if configStore != nil {
		path = configStore.GetString("kb.path")
	}
	if path == "" {
		return errors.New("no document given and 'kb.path' is not configured")
	}

	report, err := ingestService.IngestFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Indexed %d topics from %d sections (%d merged) in %s\n",
		report.Topics, report.Sections, report.Merged, report.Duration.Round(fmtDuration))

	if len(report.Warnings) > 0 {
		cmd.Printf("\n%d warning(s):\n", len(report.Warnings))
		for _, w := range report.Warnings {
			cmd.Printf("  line %d (%s): %s\n", w.Line, w.Heading, w.Reason)
		}
	}

	return nil
}
