package mcp

import (
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Converter runs conversions and lists categories.
	Converter driving.ConverterService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Converter == nil {
		return ErrMissingConverterService
	}
	return nil
}
