package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Category string  `json:"category" jsonschema:"conversion category: length, weight, temperature, currency, volume or height"`
	Value    float64 `json:"value" jsonschema:"the value to convert"`
	From     string  `json:"from" jsonschema:"source unit, exactly as listed by the category's units resource"`
	To       string  `json:"to" jsonschema:"target unit, exactly as listed by the category's units resource"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

// CircleAreaInput is the input schema for the circle_area tool.
type CircleAreaInput struct {
	Radius float64 `json:"radius" jsonschema:"radius of the circle"`
}

// CircleAreaOutput is the output schema for the circle_area tool.
type CircleAreaOutput struct {
	Area    float64 `json:"area"`
	Display string  `json:"display"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a value between two units of the same category",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "circle_area",
		Description: "Compute the area of a circle from its radius",
	}, s.handleCircleArea)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	if !category.HasUnits() {
		return nil, ConvertOutput{}, fmt.Errorf("%w: use the circle_area tool for %s", domain.ErrInvalidInput, category.Label())
	}
	if err := category.CheckInput(input.Value); err != nil {
		return nil, ConvertOutput{}, err
	}

	result, err := s.ports.Converter.Convert(ctx, domain.ConversionRequest{
		Category: category,
		Value:    input.Value,
		From:     strings.TrimSpace(input.From),
		To:       strings.TrimSpace(input.To),
	})
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	return nil, ConvertOutput{Result: result.Value, Display: result.Display}, nil
}

// handleCircleArea handles the circle_area tool invocation.
func (s *Server) handleCircleArea(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CircleAreaInput,
) (*mcp.CallToolResult, CircleAreaOutput, error) {
	if err := domain.CategoryCircleArea.CheckInput(input.Radius); err != nil {
		return nil, CircleAreaOutput{}, err
	}

	result, err := s.ports.Converter.Convert(ctx, domain.ConversionRequest{
		Category: domain.CategoryCircleArea,
		Value:    input.Radius,
	})
	if err != nil {
		return nil, CircleAreaOutput{}, err
	}

	return nil, CircleAreaOutput{Area: result.Value, Display: result.Display}, nil
}
