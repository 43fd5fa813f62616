// Package cli provides the cobra command tree for Snipdex.
//
// Commands hold no business logic: they validate flags, call the
// driving ports injected via SetServices, and format output.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
	"github.com/snipdex/snipdex/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Driving ports, injected by the composition root before Execute.
var (
	queryService  driving.QueryService
	ingestService driving.IngestService
	configStore   driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "snipdex",
	Short: "Index and query reference-document code snippets",
	Long: `Snipdex ingests a heading-delimited reference document (such as a
JavaScript knowledge base in markdown), extracts topics and fenced code
samples, and serves lookups by topic key or substring.

Ingest a document once, then query it from the CLI, the TUI, or an MCP
client such as a code-generation assistant.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the driving ports used by the commands.
// Must be called before Execute.
func SetServices(query driving.QueryService, ingest driving.IngestService) {
	queryService = query
	ingestService = ingest
}

// SetConfigStore injects the config store used by the config commands.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Long-running commands (watch, mcp serve) stop when it is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// notInitializedHint rewrites ErrNotInitialized into an actionable
// message; other errors pass through unchanged.
func notInitializedHint(err error) error {
	if errors.Is(err, domain.ErrNotInitialized) {
		return errors.New("index not initialized - run 'snipdex ingest <file>' first")
	}
	return err
}
