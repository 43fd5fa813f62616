package mcp

import (
	"github.com/snipdex/snipdex/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query provides lookup and search over the snippet index.
	Query driving.QueryService

	// Ingest rebuilds the index. Optional; without it the reindex
	// tool is not registered.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	// Ingest is optional
	return nil
}
