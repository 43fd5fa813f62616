package domain

import "time"

// BuildReport summarises one index build. It is returned to the caller
// alongside the Ready index and optionally persisted as build history.
type BuildReport struct {
	// ID uniquely identifies this build.
	ID string

	// Sections is the number of raw sections the parser produced.
	Sections int

	// Topics is the number of entries in the built index.
	Topics int

	// Merged is the number of sections folded into an existing entry.
	Merged int

	// Skipped is the number of sections dropped with a warning.
	Skipped int

	// Warnings collects every recoverable problem from the build.
	// A non-empty list signals source-document quality issues, not
	// a failed build.
	Warnings []ParseWarning

	// BuiltAt is when the build completed.
	BuiltAt time.Time

	// Duration is how long parse, normalize and build took.
	Duration time.Duration
}
