// Package domain defines the core business entities for Snipdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: A normalized topic with its description and code samples
//   - CodeSample: One fenced snippet extracted from the source document
//   - Section: A raw (heading, body, samples) triple from the parser
//   - ParseWarning: A recoverable problem found during ingestion
//   - BuildReport: The outcome of one index build
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
