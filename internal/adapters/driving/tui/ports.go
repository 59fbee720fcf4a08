// Package tui provides an interactive terminal user interface for unitconv.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter runs conversions and lists categories and units.
	Converter driving.ConverterService

	// Settings provides the preselected category. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(converter driving.ConverterService, settings driving.SettingsService) *Ports {
	return &Ports{
		Converter: converter,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	return nil
}
