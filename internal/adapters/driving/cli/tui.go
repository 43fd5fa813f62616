package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the snippet index interactively",
	Long: `Open an interactive terminal UI for the snippet index.

Type to search topics as you go, use the arrow keys to move through
results, and press enter to read an entry's code samples.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	app, err := tui.NewApp(queryService)
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context())

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
