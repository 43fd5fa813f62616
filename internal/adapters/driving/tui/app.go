// Package tui provides an interactive terminal UI for browsing the
// snippet index: type to search, navigate results, open an entry to
// read its code samples.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
)

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// view identifies which screen the app is showing.
type view int

const (
	viewSearch view = iota
	viewDetail
)

// searchResultMsg carries search results back into the update loop.
type searchResultMsg struct {
	results []domain.Entry
	err     error
}

// App is the bubbletea model for the Snipdex TUI.
type App struct {
	query driving.QueryService
	ctx   context.Context

	view     view
	input    textinput.Model
	results  []domain.Entry
	cursor   int
	detail   viewport.Model
	selected *domain.Entry
	status   string
	width    int
	height   int
}

// NewApp creates the TUI app.
func NewApp(query driving.QueryService) (*App, error) {
	if query == nil {
		return nil, ErrMissingQueryService
	}

	input := textinput.New()
	input.Placeholder = "Search topics..."
	input.Focus()

	return &App{
		query:  query,
		ctx:    context.Background(),
		input:  input,
		detail: viewport.New(80, 20),
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.detail.Width = msg.Width
		a.detail.Height = msg.Height - 2
		return a, nil

	case searchResultMsg:
		if msg.err != nil {
			a.status = errorStatus(msg.err)
			a.results = nil
		} else {
			a.status = fmt.Sprintf("%d result(s)", len(msg.results))
			a.results = msg.results
		}
		a.cursor = 0
		return a, nil

	case tea.KeyMsg:
		if a.view == viewDetail {
			return a.updateDetail(msg)
		}
		return a.updateSearch(msg)
	}

	return a, nil
}

// updateSearch handles keys on the search screen.
func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "enter":
		if len(a.results) > 0 && a.cursor < len(a.results) {
			entry := a.results[a.cursor]
			a.selected = &entry
			a.detail.SetContent(renderEntry(&entry))
			a.detail.GotoTop()
			a.view = viewDetail
			return a, nil
		}
		return a, a.search(a.input.Value())

	case "up", "ctrl+k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "ctrl+j":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	// Live search as the query changes.
	if value := strings.TrimSpace(a.input.Value()); value != "" {
		return a, tea.Batch(cmd, a.search(value))
	}
	a.results = nil
	a.status = ""
	return a, cmd
}

// updateDetail handles keys on the entry detail screen.
func (a *App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc", "q":
		a.view = viewSearch
		a.selected = nil
		return a, nil
	}

	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

// search returns a command that queries the index.
func (a *App) search(substring string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.query.Search(a.ctx, substring)
		return searchResultMsg{results: results, err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.view == viewDetail {
		return a.detail.View() + "\n" + helpStyle.Render("esc back • ctrl+c quit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("snipdex"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	for i, entry := range a.results {
		line := fmt.Sprintf("%s (%d samples)", entry.Topic, len(entry.Samples))
		if i == a.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ navigate • enter open • esc quit"))
	return b.String()
}

// errorStatus maps query errors to short status messages.
func errorStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotInitialized):
		return "index not initialized - run 'snipdex ingest' first"
	case errors.Is(err, domain.ErrInvalidQuery):
		return "type something to search"
	default:
		return "error: " + err.Error()
	}
}
