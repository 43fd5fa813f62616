package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index size and the last build",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if queryService == nil || ingestService == nil {
		return errors.New("services not configured")
	}

	ctx := cmd.Context()

	topics, err := queryService.ListTopics(ctx)
	if errors.Is(err, domain.ErrNotInitialized) {
		cmd.Println("Index: not initialized (run 'snipdex ingest <file>')")
	} else if err != nil {
		return err
	} else {
		count := 0
		for range topics {
			count++
		}
		cmd.Printf("Index: %d topics\n", count)
	}

	report, err := ingestService.LastBuild(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("Last build: none recorded")
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Printf("Last build: %s\n", report.BuiltAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  id:       %s\n", report.ID)
	cmd.Printf("  sections: %d (%d merged, %d skipped)\n", report.Sections, report.Merged, report.Skipped)
	cmd.Printf("  duration: %s\n", report.Duration.Round(fmtDuration))
	if len(report.Warnings) > 0 {
		cmd.Printf("  warnings: %d\n", len(report.Warnings))
	}
	return nil
}
