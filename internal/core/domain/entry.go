package domain

import (
	"slices"
	"strings"
)

// DefaultLanguage is the language assigned to fenced blocks
// that carry no language tag.
const DefaultLanguage = "text"

// CodeSample represents one fenced snippet from the source document.
type CodeSample struct {
	// Language is the declared fence language tag ("js", "html", ...).
	// Defaults to "text" when the opening fence has no tag.
	Language string

	// Body is the snippet text between the fences. Never empty.
	Body string

	// Caption is the nearest preceding descriptive line, if any.
	Caption string
}

// Entry represents one normalized topic and everything indexed under it.
// Entries are the unit of lookup and search results.
type Entry struct {
	// Topic is the normalized, unique key derived from the section heading.
	// Example: "📌 3. Data Types" becomes "data-types".
	Topic string

	// Tags are the lower-cased heading words, minus stop-words and
	// ordinals. Sorted and deduplicated.
	Tags []string

	// Description is the section's prose with fenced blocks removed.
	// Sections that merge into an existing entry append their text.
	Description string

	// Samples are the code samples in document order. Merged sections
	// concatenate their samples after the existing ones.
	Samples []CodeSample
}

// Clone returns a deep copy of the entry. The index hands out clones
// so callers can never reach into its internal storage.
func (e Entry) Clone() Entry {
	c := e
	c.Tags = slices.Clone(e.Tags)
	c.Samples = slices.Clone(e.Samples)
	return c
}

// HasTag reports whether the entry carries the given tag.
func (e Entry) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// Matches reports whether the entry's topic key or any of its tags
// contains the given substring. The comparison is case-insensitive;
// the caller is expected to pass a non-empty substring.
func (e Entry) Matches(substring string) bool {
	sub := strings.ToLower(substring)
	if strings.Contains(e.Topic, sub) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(tag, sub) {
			return true
		}
	}
	return false
}
