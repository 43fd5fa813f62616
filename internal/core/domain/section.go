package domain

// Section is the raw output of the document parser: one heading and
// everything up to the next heading at the same level. Sections are
// not deduplicated; normalization merges them into Entries.
type Section struct {
	// Heading is the raw heading text with markers stripped,
	// e.g. "📌 2. Variables".
	Heading string

	// Body is the section's prose with fenced blocks removed.
	Body string

	// Samples are the fenced blocks in document order.
	Samples []CodeSample

	// Line is the 1-based line number of the heading in the source.
	Line int
}

// ParseWarning records a recoverable problem found during ingestion.
// Warnings never abort a build; the affected section is skipped and
// the rest of the document is indexed normally.
type ParseWarning struct {
	// Heading identifies the affected section, if known.
	Heading string

	// Line is the 1-based source line the problem was detected at.
	Line int

	// Reason describes what went wrong, e.g. "unterminated code fence".
	Reason string
}
