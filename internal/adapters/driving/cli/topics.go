package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List all indexed topic keys",
	Args:  cobra.NoArgs,
	RunE:  runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	topics, err := queryService.ListTopics(cmd.Context())
	if err != nil {
		return notInitializedHint(err)
	}

	count := 0
	for topic := range topics {
		cmd.Println(topic)
		count++
	}
	if count == 0 {
		cmd.Println("No topics indexed.")
	}
	return nil
}
