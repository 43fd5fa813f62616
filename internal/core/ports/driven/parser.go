package driven

import (
	"context"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// DocumentParser splits a reference document into raw sections.
// Implementations are pure functions of the input text: no I/O,
// no retained state between calls.
type DocumentParser interface {
	// Parse splits the document on heading markers and extracts the
	// fenced code blocks within each section. Recoverable problems
	// (unterminated fence, preamble handling) are reported as warnings;
	// the affected section is omitted from the result.
	Parse(ctx context.Context, text string) ([]domain.Section, []domain.ParseWarning, error)
}
