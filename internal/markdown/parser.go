// Package markdown parses heading-delimited, fenced-code-block reference
// documents into raw sections.
//
// The parser assumes no schema beyond the lightweight-markup convention:
// headings at a designated nesting level mark section boundaries, and
// triple-backtick fences (optionally with a language tag on the opening
// fence) delimit code samples. Everything else is opaque prose.
package markdown

import (
	"context"
	"strings"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// DefaultHeadingLevel is the heading nesting level sections split on.
// Level 2 matches "## Heading" lines.
const DefaultHeadingLevel = 2

// PreambleHeading is the synthetic heading assigned to body text that
// appears before the first heading in the document.
const PreambleHeading = "Introduction"

const fenceMarker = "```"

// Parser splits reference documents into sections.
type Parser struct {
	headingLevel int
}

// Option configures the parser.
type Option func(*Parser)

// WithHeadingLevel sets the heading nesting level sections split on.
// Headings at other levels are treated as ordinary body text.
func WithHeadingLevel(level int) Option {
	return func(p *Parser) {
		if level >= 1 && level <= 6 {
			p.headingLevel = level
		}
	}
}

// New creates a new parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{headingLevel: DefaultHeadingLevel}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// rawSection accumulates one section's lines before fence extraction.
type rawSection struct {
	heading string
	line    int
	body    []string
}

// Parse splits the document on heading markers and extracts fenced code
// blocks within each section, in document order.
//
// A section containing an unterminated fence is skipped with a warning;
// parsing continues with the next heading. A non-empty preamble before
// the first heading becomes a synthetic "Introduction" section.
// Parse is a pure function of the input text.
func (p *Parser) Parse(ctx context.Context, text string) ([]domain.Section, []domain.ParseWarning, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	marker := strings.Repeat("#", p.headingLevel) + " "

	var raws []rawSection
	current := rawSection{heading: PreambleHeading, line: 1}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if heading, ok := splitHeading(line, marker); ok {
			raws = append(raws, current)
			current = rawSection{heading: heading, line: i + 1}
			continue
		}
		current.body = append(current.body, line)
	}
	raws = append(raws, current)

	var sections []domain.Section
	var warnings []domain.ParseWarning

	for i, raw := range raws {
		// The preamble only becomes a section when it has content.
		if i == 0 && raw.heading == PreambleHeading && isBlank(raw.body) {
			continue
		}

		section, warning := extractSection(raw)
		if warning != nil {
			warnings = append(warnings, *warning)
			continue
		}
		sections = append(sections, section)
	}

	return sections, warnings, nil
}

// splitHeading returns the heading text if the line is a heading at the
// designated level. A line with more leading '#' than the marker is a
// deeper heading and stays in the body.
func splitHeading(line, marker string) (string, bool) {
	if !strings.HasPrefix(line, marker) {
		return "", false
	}
	rest := strings.TrimPrefix(line, marker)
	if strings.HasPrefix(rest, "#") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// extractSection separates a raw section's body into prose and fenced
// code samples. Returns a warning instead of a section when a fence is
// never closed.
func extractSection(raw rawSection) (domain.Section, *domain.ParseWarning) {
	var prose []string
	var samples []domain.CodeSample

	inFence := false
	fenceLine := 0
	language := ""
	var fenceBody []string

	// The caption is the last non-blank prose line seen before a fence.
	caption := ""

	for i, line := range raw.body {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			if !inFence {
				inFence = true
				fenceLine = raw.line + i + 1
				language = strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
				if language == "" {
					language = domain.DefaultLanguage
				}
				fenceBody = fenceBody[:0]
				continue
			}

			// Closing fence. Empty bodies produce no sample.
			body := strings.Join(fenceBody, "\n")
			if strings.TrimSpace(body) != "" {
				samples = append(samples, domain.CodeSample{
					Language: language,
					Body:     body,
					Caption:  caption,
				})
			}
			inFence = false
			continue
		}

		if inFence {
			fenceBody = append(fenceBody, line)
			continue
		}

		prose = append(prose, line)
		if trimmed != "" {
			caption = trimmed
		}
	}

	if inFence {
		return domain.Section{}, &domain.ParseWarning{
			Heading: raw.heading,
			Line:    fenceLine,
			Reason:  "unterminated code fence",
		}
	}

	return domain.Section{
		Heading: raw.heading,
		Body:    strings.TrimSpace(strings.Join(prose, "\n")),
		Samples: samples,
		Line:    raw.line,
	}, nil
}

// isBlank reports whether every line is empty or whitespace.
func isBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
