// Package input provides text input components for the TUI.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// ValueInput wraps a bubbles textinput for entering the number to convert.
type ValueInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewValueInput creates a new value input component with the given label.
func NewValueInput(s *styles.Styles, label string) *ValueInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 24

	return &ValueInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     24,
	}
}

// Init initialises the value input.
func (v *ValueInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (v *ValueInput) Update(msg tea.Msg) (*ValueInput, tea.Cmd) {
	var cmd tea.Cmd
	v.textinput, cmd = v.textinput.Update(msg)
	return v, cmd
}

// View renders the value input.
func (v *ValueInput) View() string {
	labelStyle := v.styles.Label
	if v.textinput.Focused() {
		labelStyle = v.styles.FocusedLabel
	}
	label := labelStyle.Render(v.label + ":")
	input := v.styles.InputField.Render(v.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Number parses the entered text as a float64.
// An empty input reads as zero, matching a freshly shown form.
func (v *ValueInput) Number() (float64, error) {
	raw := strings.TrimSpace(v.textinput.Value())
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, raw)
	}
	return n, nil
}

// Label returns the field label.
func (v *ValueInput) Label() string {
	return v.label
}

// SetLabel sets the field label.
func (v *ValueInput) SetLabel(label string) {
	v.label = label
}

// Value returns the current input text.
func (v *ValueInput) Value() string {
	return v.textinput.Value()
}

// SetValue sets the input text.
func (v *ValueInput) SetValue(value string) {
	v.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (v *ValueInput) Focus() tea.Cmd {
	return v.textinput.Focus()
}

// Blur removes focus from the input.
func (v *ValueInput) Blur() {
	v.textinput.Blur()
}

// Focused returns whether the input is focused.
func (v *ValueInput) Focused() bool {
	return v.textinput.Focused()
}

// SetWidth sets the width of the input.
func (v *ValueInput) SetWidth(width int) {
	v.width = width
	// Account for label and padding
	inputWidth := width - 14
	if inputWidth < 12 {
		inputWidth = 12
	}
	if inputWidth > 40 {
		inputWidth = 40
	}
	v.textinput.Width = inputWidth
}

// Width returns the current width.
func (v *ValueInput) Width() int {
	return v.width
}

// Reset clears the input.
func (v *ValueInput) Reset() {
	v.textinput.Reset()
}
