package cli

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// fmtDuration is the rounding applied to durations in human output.
const fmtDuration = time.Millisecond

var (
	topicStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	captionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	fenceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// printEntry renders a full entry: topic, tags, description and every
// code sample with its caption and language.
func printEntry(cmd *cobra.Command, entry *domain.Entry) {
	cmd.Println(topicStyle.Render(entry.Topic))
	if len(entry.Tags) > 0 {
		cmd.Println(tagStyle.Render("tags: " + joinTags(entry.Tags)))
	}
	if entry.Description != "" {
		cmd.Println()
		cmd.Println(entry.Description)
	}

	for _, sample := range entry.Samples {
		cmd.Println()
		if sample.Caption != "" {
			cmd.Println(captionStyle.Render(sample.Caption))
		}
		cmd.Println(fenceStyle.Render("--- " + sample.Language + " ---"))
		cmd.Println(sample.Body)
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += tag
	}
	return out
}
