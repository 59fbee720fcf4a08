// Package mcp provides an MCP (Model Context Protocol) server adapter for unitconv.
// It lets AI assistants run conversions and browse the available units.
package mcp

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("mcp: converter service is required")
