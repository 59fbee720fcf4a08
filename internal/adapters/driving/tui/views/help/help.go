// Package help provides the "how to use" view for the TUI.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
)

// Steps are the usage instructions shown by the view.
var Steps = []string{
	"Select the conversion type (e.g., Length, Weight, Temperature).",
	"Enter the value you want to convert.",
	"Select the units you want to convert from and to.",
	`Press "Convert" (enter) to see the result.`,
}

// View renders usage steps and the key reference.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int
	height int
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, width: 80, height: 24}
}

// Init initialises the help view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view. Any of esc, enter or q
// returns to the menu.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the help text.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("How to Use"))
	b.WriteString("\n\n")

	for i, step := range Steps {
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Keys"))
	b.WriteString("\n")
	for _, group := range v.keymap.FullHelp() {
		b.WriteString("  " + renderGroup(v.styles, group))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

func renderGroup(s *styles.Styles, group []key.Binding) string {
	parts := make([]string, 0, len(group))
	for _, b := range group {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%-10s %-12s", h.Key, h.Desc))
	}
	return s.Muted.Render(strings.Join(parts, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
