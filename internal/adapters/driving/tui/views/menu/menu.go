// Package menu provides the category menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// Item represents a single menu option.
// Exactly one of Category, View or Quit is meaningful.
type Item struct {
	Label    string
	Category domain.Category
	View     messages.ViewType
	Quit     bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view listing the given categories,
// followed by "How to use" and "Quit".
func NewView(s *styles.Styles, categories []domain.Category) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(categories)+2)
	for _, c := range categories {
		items = append(items, Item{Label: c.Label(), Category: c})
	}
	items = append(items,
		Item{Label: "How to use", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles:   s,
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.choose(v.selected)

		case "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}

		case "q":
			return v, tea.Quit
		}

		// Digits jump straight to a numbered item.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(v.items) {
				v.selected = idx
				return v, v.choose(idx)
			}
		}
	}

	return v, nil
}

func (v *View) choose(idx int) tea.Cmd {
	item := v.items[idx]
	switch {
	case item.Quit:
		return tea.Quit
	case item.Category != "":
		return func() tea.Msg {
			return messages.CategorySelected{Category: item.Category}
		}
	default:
		return func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Unit Converter"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Muted.Render("Choose a conversion type"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal

		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		line := cursor + style.Render(fmt.Sprintf("%d. %s", i+1, item.Label))
		if i == v.selected && item.Category != "" {
			line += "  " + v.styles.Muted.Render(item.Category.Description())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [?] How to use  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectCategory moves the cursor to the given category.
// It returns false if the category is not listed.
func (v *View) SelectCategory(c domain.Category) bool {
	for i, item := range v.items {
		if item.Category != "" && item.Category == c {
			v.selected = i
			return true
		}
	}
	return false
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
