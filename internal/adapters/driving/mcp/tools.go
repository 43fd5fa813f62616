package mcp

import (
	"context"
	"errors"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// LookupInput is the input schema for the lookup_topic tool.
type LookupInput struct {
	Topic string `json:"topic" jsonschema:"the topic key or heading text to look up"`
}

// SearchInput is the input schema for the search_snippets tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"substring matched against topic keys and tags"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// ListTopicsInput is the (empty) input schema for the list_topics tool.
type ListTopicsInput struct{}

// EntryOutput represents one indexed topic in tool results.
type EntryOutput struct {
	Topic       string         `json:"topic"`
	Tags        []string       `json:"tags,omitempty"`
	Description string         `json:"description,omitempty"`
	Samples     []SampleOutput `json:"samples,omitempty"`
}

// SampleOutput represents one code sample in tool results.
type SampleOutput struct {
	Language string `json:"language"`
	Body     string `json:"body"`
	Caption  string `json:"caption,omitempty"`
}

// LookupOutput is the output schema for the lookup_topic tool.
type LookupOutput struct {
	Found bool         `json:"found"`
	Entry *EntryOutput `json:"entry,omitempty"`
}

// SearchOutput is the output schema for the search_snippets tool.
type SearchOutput struct {
	Results []EntryOutput `json:"results"`
	Count   int           `json:"count"`
}

// ListTopicsOutput is the output schema for the list_topics tool.
type ListTopicsOutput struct {
	Topics []string `json:"topics"`
	Count  int      `json:"count"`
}

// ReindexInput is the input schema for the reindex_document tool.
type ReindexInput struct {
	Path string `json:"path" jsonschema:"path to the reference document to ingest"`
}

// ReindexOutput is the output schema for the reindex_document tool.
type ReindexOutput struct {
	Topics   int      `json:"topics"`
	Sections int      `json:"sections"`
	Merged   int      `json:"merged"`
	Warnings []string `json:"warnings,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_topic",
		Description: "Look up one topic by its key and return its description and code samples",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_snippets",
		Description: "Search indexed topics by substring over topic keys and tags",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_topics",
		Description: "List all indexed topic keys",
	}, s.handleListTopics)

	if s.ports.Ingest != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "reindex_document",
			Description: "Rebuild the index from a reference document on disk",
		}, s.handleReindex)
	}
}

// handleLookup handles the lookup_topic tool invocation.
// An unknown topic returns found=false rather than a protocol error.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	entry, err := s.ports.Query.Lookup(ctx, input.Topic)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, LookupOutput{Found: false}, nil
	}
	if err != nil {
		return nil, LookupOutput{}, err
	}

	out := entryOutput(*entry)
	return nil, LookupOutput{Found: true, Entry: &out}, nil
}

// handleSearch handles the search_snippets tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.ports.Query.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]EntryOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = entryOutput(results[i])
	}

	return nil, output, nil
}

// handleListTopics handles the list_topics tool invocation.
func (s *Server) handleListTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTopicsInput,
) (*mcp.CallToolResult, ListTopicsOutput, error) {
	topics, err := s.ports.Query.ListTopics(ctx)
	if err != nil {
		return nil, ListTopicsOutput{}, err
	}

	collected := slices.Collect(topics)
	return nil, ListTopicsOutput{Topics: collected, Count: len(collected)}, nil
}

// handleReindex handles the reindex_document tool invocation.
// Only registered when an ingest port was provided.
func (s *Server) handleReindex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReindexInput,
) (*mcp.CallToolResult, ReindexOutput, error) {
	report, err := s.ports.Ingest.IngestFile(ctx, input.Path)
	if err != nil {
		return nil, ReindexOutput{}, err
	}

	out := ReindexOutput{
		Topics:   report.Topics,
		Sections: report.Sections,
		Merged:   report.Merged,
	}
	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, w.Reason)
	}
	return nil, out, nil
}

// entryOutput converts a domain entry to its tool-result form.
func entryOutput(entry domain.Entry) EntryOutput {
	out := EntryOutput{
		Topic:       entry.Topic,
		Tags:        entry.Tags,
		Description: entry.Description,
	}
	for _, sample := range entry.Samples {
		out.Samples = append(out.Samples, SampleOutput(sample))
	}
	return out
}
