// Package picker provides a single-line option selector for the TUI.
package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
)

// Picker cycles through a fixed list of options, rendered as "Label: < option >".
// Navigation wraps around at both ends.
type Picker struct {
	styles   *styles.Styles
	label    string
	options  []string
	selected int
	focused  bool
}

// NewPicker creates a picker with the given label and options.
func NewPicker(s *styles.Styles, label string, options []string) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	p := &Picker{
		styles: s,
		label:  label,
	}
	p.SetOptions(options)
	return p
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles left/right navigation while focused.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			p.Prev()
		case "right", "l", " ":
			p.Next()
		}
	}
	return p, nil
}

// View renders the picker.
func (p *Picker) View() string {
	labelStyle := p.styles.Label
	if p.focused {
		labelStyle = p.styles.FocusedLabel
	}
	label := labelStyle.Render(p.label + ":")

	value := p.styles.Muted.Render("(none)")
	if len(p.options) > 0 {
		value = p.styles.Unit.Render(p.Selected())
	}

	left, right := "  ", "  "
	if p.focused {
		left, right = "< ", " >"
	}
	counter := p.styles.Muted.Render(fmt.Sprintf("  %d/%d", p.selected+1, len(p.options)))
	if len(p.options) == 0 {
		counter = ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", left, value, right, counter)
}

// Next selects the following option.
func (p *Picker) Next() {
	if len(p.options) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.options)
}

// Prev selects the preceding option.
func (p *Picker) Prev() {
	if len(p.options) == 0 {
		return
	}
	p.selected = (p.selected - 1 + len(p.options)) % len(p.options)
}

// Selected returns the current option, or "" when there are none.
func (p *Picker) Selected() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.selected]
}

// SelectedIndex returns the index of the current option.
func (p *Picker) SelectedIndex() int {
	return p.selected
}

// Select moves to the named option. It returns false if the option is absent.
func (p *Picker) Select(option string) bool {
	for i, o := range p.options {
		if o == option {
			p.selected = i
			return true
		}
	}
	return false
}

// SetIndex moves to the given index, clamped to the option range.
func (p *Picker) SetIndex(i int) {
	if len(p.options) == 0 {
		p.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.options) {
		i = len(p.options) - 1
	}
	p.selected = i
}

// SetOptions replaces the options and resets the selection.
func (p *Picker) SetOptions(options []string) {
	p.options = make([]string, len(options))
	copy(p.options, options)
	p.selected = 0
}

// Options returns a copy of the options.
func (p *Picker) Options() []string {
	out := make([]string, len(p.options))
	copy(out, p.options)
	return out
}

// Label returns the picker label.
func (p *Picker) Label() string {
	return p.label
}

// Focus gives the picker keyboard focus.
func (p *Picker) Focus() {
	p.focused = true
}

// Blur removes keyboard focus.
func (p *Picker) Blur() {
	p.focused = false
}

// Focused returns whether the picker has focus.
func (p *Picker) Focused() bool {
	return p.focused
}
