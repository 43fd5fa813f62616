package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// uriScheme is the custom URI scheme for Snipdex resources.
const uriScheme = "snipdex://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing topics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "topics",
		Name:        "topics",
		Description: "All indexed topic keys",
		MIMEType:    "application/json",
	}, s.handleTopicsResource)

	// Template for individual entries.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "topics/{topicKey}",
		Name:        "topic-entry",
		Description: "One topic's description and code samples",
		MIMEType:    "application/json",
	}, s.handleEntryResource)
}

// handleTopicsResource returns all topic keys.
func (s *Server) handleTopicsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	topics, err := s.ports.Query.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}

	data, err := json.MarshalIndent(slices.Collect(topics), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling topics: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleEntryResource returns one entry by topic key.
func (s *Server) handleEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractTopicKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Query.Lookup(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", key, err)
	}

	data, err := json.MarshalIndent(entryOutput(*entry), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling entry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTopicKey extracts the topic key from a URI like snipdex://topics/{topicKey}.
func extractTopicKey(uri string) string {
	const prefix = uriScheme + "topics/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
