// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the category menu.
	ViewMenu ViewType = iota
	// ViewConverter is the conversion form for one category.
	ViewConverter
	// ViewHelp is the "how to use" view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewConverter:
		return "converter"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CategorySelected is sent when a category is picked from the menu.
type CategorySelected struct {
	Category domain.Category
}

// ConversionRequested is a command to run a conversion.
type ConversionRequested struct {
	Request domain.ConversionRequest
}

// ConversionCompleted carries the outcome of a conversion back to the model.
type ConversionCompleted struct {
	Result *domain.ConversionResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// SettingsReloaded is sent when the config file changed on disk.
type SettingsReloaded struct{}

// Quit signals the application should exit.
type Quit struct{}
