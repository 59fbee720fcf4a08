package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid units URI",
			uri:      "unitconv://categories/length/units",
			expected: "length",
		},
		{
			name:     "invalid prefix",
			uri:      "file://categories/length/units",
			expected: "",
		},
		{
			name:     "missing units suffix",
			uri:      "unitconv://categories/length",
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
			result := extractCategory(tt.uri)
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

func TestServer_handleCategoriesResource(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleCategoriesResource(context.Background(), makeReadResourceRequest("unitconv://categories"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Equal(t, "unitconv://categories", result.Contents[0].URI)

	var infos []domain.CategoryInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 7)
	assert.Equal(t, domain.CategoryCurrency, infos[3].ID)
	assert.Equal(t, []string{"USD", "INR", "EUR", "GBP", "AUD", "PKR", "SAR"}, infos[3].Units)
}

func TestServer_handleUnitsResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("returns units", func(t *testing.T) {
		uri := "unitconv://categories/height/units"
		result, err := server.handleUnitsResource(ctx, makeReadResourceRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var units []string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &units))
		assert.Equal(t, []string{"meters", "centimeters", "feet", "inches"}, units)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		_, err := server.handleUnitsResource(ctx, makeReadResourceRequest("unitconv://categories/speed/units"))
		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleUnitsResource(ctx, makeReadResourceRequest("unitconv://categories/length"))
		assert.Error(t, err)
	})
}
