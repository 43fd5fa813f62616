package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snipdex/snipdex/internal/core/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	topicStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tagStyle     = lipgloss.NewStyle().Faint(true)
	captionStyle = lipgloss.NewStyle().Italic(true)
	fenceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// renderEntry formats an entry for the detail viewport.
func renderEntry(entry *domain.Entry) string {
	var b strings.Builder
	b.WriteString(topicStyle.Render(entry.Topic))
	b.WriteString("\n")
	if len(entry.Tags) > 0 {
		b.WriteString(tagStyle.Render("tags: " + strings.Join(entry.Tags, ", ")))
		b.WriteString("\n")
	}
	if entry.Description != "" {
		b.WriteString("\n")
		b.WriteString(entry.Description)
		b.WriteString("\n")
	}
	for _, sample := range entry.Samples {
		b.WriteString("\n")
		if sample.Caption != "" {
			b.WriteString(captionStyle.Render(sample.Caption))
			b.WriteString("\n")
		}
		b.WriteString(fenceStyle.Render("```" + sample.Language))
		b.WriteString("\n")
		b.WriteString(sample.Body)
		b.WriteString("\n")
		b.WriteString(fenceStyle.Render("```"))
		b.WriteString("\n")
	}
	return b.String()
}
