package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSectionKey(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid section URI",
			uri:      "suppdraft://sections/ranking",
			expected: "ranking",
		},
		{
			name:     "invalid prefix",
			uri:      "file://sections/ranking",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "suppdraft://sections/ranking/extra",
			expected: "",
		},
		{
			name:     "list URI",
			uri:      "suppdraft://sections",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractSectionKey(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSectionsResource(t *testing.T) {
	ctx := context.Background()
	server, draft := newTestServer(t)
	require.NoError(t, draft.SetValue("asof", "June 29, 2025"))

	req := makeReadResourceRequest("suppdraft://sections")
	result, err := server.handleSectionsResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var sections []struct {
		Key       string   `json:"key"`
		Changed   bool     `json:"changed"`
		Variables []string `json:"variables"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &sections))
	require.Len(t, sections, 3)
	assert.Equal(t, "ranking", sections[0].Key)
	assert.True(t, sections[0].Changed)
	assert.Equal(t, []string{"asof", "sr_notes"}, sections[0].Variables)
	assert.Equal(t, []string{}, sections[2].Variables)
}

func TestServer_handleVariablesResource(t *testing.T) {
	ctx := context.Background()
	server, draft := newTestServer(t)
	require.NoError(t, draft.SetValue("sr_notes", "$16,200.0 million"))

	req := makeReadResourceRequest("suppdraft://variables")
	result, err := server.handleVariablesResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var vars []VariableOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &vars))
	require.Len(t, vars, 3)
	assert.Equal(t, "asof", vars[0].ID)
	assert.False(t, vars[0].Changed)
	assert.Equal(t, "$16,200.0 million", vars[1].Value)
	assert.True(t, vars[1].Changed)
	assert.Equal(t, "counsel", vars[2].Source)
	assert.Equal(t, "Ordinal only", vars[2].Hint)
}

func TestServer_handleSectionTextResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered text", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := makeReadResourceRequest("suppdraft://sections/cover")
		result, err := server.handleSectionTextResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "Twelfth supplement. [Note: confirm date]", result.Contents[0].Text)
	})

	t.Run("unknown section returns not found", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := makeReadResourceRequest("suppdraft://sections/missing")
		result, err := server.handleSectionTextResource(ctx, req)

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := makeReadResourceRequest("suppdraft://other")
		result, err := server.handleSectionTextResource(ctx, req)

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
