// Package mcp provides an MCP (Model Context Protocol) server adapter for Snipdex.
// It lets code-generation assistants query the snippet index while writing code.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
