package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// stopWords are heading words that carry no retrieval value and are
// excluded from tag derivation.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "in": {}, "of": {},
	"on": {}, "or": {}, "the": {}, "to": {}, "with": {},
}

// TopicKey derives the normalized topic key from a heading.
// It lower-cases the heading, strips emoji and ordinal markers, and
// joins the remaining words with hyphens:
//
//	"📌 3. Data Types" -> "data-types"
//
// Returns "" for headings with no indexable content, which signals a
// malformed section.
func TopicKey(heading string) string {
	words := headingWords(heading)
	return strings.Join(words, "-")
}

// HeadingTags derives the tag set from a heading: the lower-cased
// words minus stop-words and numeric ordinals, sorted and deduplicated.
func HeadingTags(heading string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, word := range headingWords(heading) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tags = append(tags, word)
	}
	sort.Strings(tags)
	return tags
}

// headingWords splits a heading into lower-cased alphanumeric words,
// dropping emoji, punctuation and purely numeric ordinals.
func headingWords(heading string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if isNumeric(word) {
			return
		}
		words = append(words, word)
	}

	for _, r := range strings.ToLower(heading) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return words
}

// isNumeric reports whether the word consists only of digits.
func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(word) > 0
}

// NormalizeSections converts raw sections into deduplicated entries.
//
// Sections whose headings normalize to the same key merge: the later
// section's description is appended and its samples are concatenated
// after the existing ones, preserving document order. Sections whose
// heading normalizes to an empty key are dropped with a warning.
//
// Entries are returned in topic-key sort order. The second return
// value counts merged sections.
func NormalizeSections(sections []domain.Section) ([]domain.Entry, []domain.ParseWarning, int) {
	byKey := make(map[string]*domain.Entry)
	var keys []string
	var warnings []domain.ParseWarning
	merged := 0

	for _, section := range sections {
		key := TopicKey(section.Heading)
		if key == "" {
			warnings = append(warnings, domain.ParseWarning{
				Heading: section.Heading,
				Line:    section.Line,
				Reason:  "heading normalizes to empty topic key",
			})
			continue
		}

		if existing, ok := byKey[key]; ok {
			mergeSection(existing, section)
			merged++
			continue
		}

		byKey[key] = &domain.Entry{
			Topic:       key,
			Tags:        HeadingTags(section.Heading),
			Description: section.Body,
			Samples:     append([]domain.CodeSample(nil), section.Samples...),
		}
		keys = append(keys, key)
	}

	sort.Strings(keys)
	entries := make([]domain.Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, *byKey[key])
	}

	return entries, warnings, merged
}

// mergeSection folds a duplicate section into an existing entry.
// Descriptions append rather than overwrite; samples concatenate in
// document order; tags union.
func mergeSection(entry *domain.Entry, section domain.Section) {
	if section.Body != "" {
		if entry.Description == "" {
			entry.Description = section.Body
		} else {
			entry.Description += "\n\n" + section.Body
		}
	}

	entry.Samples = append(entry.Samples, section.Samples...)

	for _, tag := range HeadingTags(section.Heading) {
		if !entry.HasTag(tag) {
			entry.Tags = append(entry.Tags, tag)
		}
	}
	sort.Strings(entry.Tags)
}
