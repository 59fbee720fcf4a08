package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for unitconv resources.
	uriScheme = "unitconv://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Conversion categories with their units",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "categories/{category}/units",
		Name:        "category-units",
		Description: "Units accepted by a conversion category",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)
}

// handleCategoriesResource returns every category with its units.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Converter.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling categories: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleUnitsResource returns the units of a single category.
func (s *Server) handleUnitsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractCategory(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	category, err := domain.ParseCategory(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	units, err := s.ports.Converter.Units(category)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}

	data, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling units: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractCategory extracts the category from a URI like unitconv://categories/{category}/units.
func extractCategory(uri string) string {
	const prefix = uriScheme + "categories/"
	const suffix = "/units"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
