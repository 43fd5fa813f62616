package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestHandleTopicsResource(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleTopicsResource(context.Background(), readResourceRequest(uriScheme+"topics"))
	require.NoError(t, err)

	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "data-types")
	assert.Contains(t, result.Contents[0].Text, "variables")
}

func TestHandleEntryResource(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleEntryResource(context.Background(), readResourceRequest(uriScheme+"topics/variables"))
	require.NoError(t, err)

	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, `"topic": "variables"`)
	assert.Contains(t, result.Contents[0].Text, "let age = 25;")
}

func TestHandleEntryResource_UnknownTopic(t *testing.T) {
	server := newTestServer(t)

	_, err := server.handleEntryResource(context.Background(), readResourceRequest(uriScheme+"topics/nonexistent"))
	assert.Error(t, err)
}

func TestExtractTopicKey(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{uriScheme + "topics/variables", "variables"},
		{uriScheme + "topics/", ""},
		{"https://example.com/topics/x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTopicKey(tt.uri))
		})
	}
}
