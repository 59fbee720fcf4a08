// Package converter provides the conversion form view for the TUI.
package converter

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/components/picker"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// ErrNoConverterService is returned when conversion is attempted without a service.
var ErrNoConverterService = errors.New("converter service not available")

// field identifies the focused form field.
type field int

const (
	fieldValue field = iota
	fieldFrom
	fieldTo
)

// View is the form for a single category: a value input, the from and to
// unit pickers, and a result or error line above the status bar.
// For circle area only the radius input is shown.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ValueInput
	from      *picker.Picker
	to        *picker.Picker
	statusbar *status.Bar

	converter driving.ConverterService
	ctx       context.Context

	category domain.Category
	focus    field
	result   *domain.ConversionResult
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new converter view.
func NewView(s *styles.Styles, km *keymap.KeyMap, converter driving.ConverterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.ConverterHelp())

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewValueInput(s, "Value"),
		from:      picker.NewPicker(s, "From", nil),
		to:        picker.NewPicker(s, "To", nil),
		statusbar: bar,
		converter: converter,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// SetCategory prepares the form for a category. The from picker starts on
// the first unit and the to picker on the second, when there is one.
func (v *View) SetCategory(c domain.Category) error {
	v.category = c
	v.input.SetLabel(c.ValueLabel())
	v.input.Reset()
	v.result = nil
	v.err = nil
	v.statusbar.Clear()
	v.setFocus(fieldValue)

	var units []string
	if c.HasUnits() {
		if v.converter == nil {
			v.setError(ErrNoConverterService)
			return ErrNoConverterService
		}
		var err error
		units, err = v.converter.Units(c)
		if err != nil {
			v.setError(err)
			return err
		}
	}

	v.from.SetOptions(units)
	v.to.SetOptions(units)
	v.to.SetIndex(1)
	return nil
}

// Update handles messages for the converter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ConversionCompleted:
		v.handleConversionCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	// Forward to input component (cursor blink)
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.Convert):
		return v, v.submit()

	case keymap.Matches(msg.String(), v.keymap.NextField):
		v.cycleFocus(1)
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.PrevField):
		v.cycleFocus(-1)
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Swap):
		v.Swap()
		return v, nil
	}

	switch v.focus {
	case fieldFrom:
		v.from, _ = v.from.Update(msg)
	case fieldTo:
		v.to, _ = v.to.Update(msg)
	case fieldValue:
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// submit validates the form and returns the conversion command.
func (v *View) submit() tea.Cmd {
	value, err := v.input.Number()
	if err != nil {
		v.setError(err)
		return nil
	}
	if err := v.category.CheckInput(value); err != nil {
		v.setError(err)
		return nil
	}

	v.err = nil
	v.statusbar.SetState(status.StateConverting)
	v.statusbar.SetMessage("")

	return v.performConversion(domain.ConversionRequest{
		Category: v.category,
		Value:    value,
		From:     v.from.Selected(),
		To:       v.to.Selected(),
	})
}

// performConversion runs a conversion and reports the outcome.
func (v *View) performConversion(req domain.ConversionRequest) tea.Cmd {
	return func() tea.Msg {
		if v.converter == nil {
			return messages.ErrorOccurred{Err: ErrNoConverterService}
		}

		result, err := v.converter.Convert(v.ctx, req)
		return messages.ConversionCompleted{Result: result, Err: err}
	}
}

// handleConversionCompleted records the result or error.
func (v *View) handleConversionCompleted(msg messages.ConversionCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = msg.Result
	v.statusbar.SetState(status.StateConverted)
	v.statusbar.SetMessage("")
}

func (v *View) setError(err error) {
	v.err = err
	v.result = nil
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// cycleFocus moves focus forward or backward through the visible fields.
func (v *View) cycleFocus(step int) {
	if !v.category.HasUnits() {
		return
	}
	next := (int(v.focus) + step + 3) % 3
	v.setFocus(field(next))
}

func (v *View) setFocus(f field) {
	v.focus = f
	v.input.Blur()
	v.from.Blur()
	v.to.Blur()

	switch f {
	case fieldValue:
		v.input.Focus()
	case fieldFrom:
		v.from.Focus()
	case fieldTo:
		v.to.Focus()
	}
}

// Swap exchanges the selected from and to units.
func (v *View) Swap() {
	from, to := v.from.Selected(), v.to.Selected()
	v.from.Select(to)
	v.to.Select(from)
}

// View renders the converter form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	header := v.styles.Title.Render(v.category.Label())
	sections = append(sections, header, v.styles.Muted.Render(v.category.Description()), "")

	sections = append(sections, v.input.View())
	if v.category.HasUnits() {
		sections = append(sections, v.from.View(), v.to.View())
	}
	sections = append(sections, "")

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	case v.result != nil:
		sections = append(sections, v.styles.Result.Render(v.result.Display), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Category returns the category the form is showing.
func (v *View) Category() domain.Category {
	return v.category
}

// Value returns the text in the value input.
func (v *View) Value() string {
	return v.input.Value()
}

// SetValue sets the text in the value input.
func (v *View) SetValue(value string) {
	v.input.SetValue(value)
}

// From returns the selected source unit.
func (v *View) From() string {
	return v.from.Selected()
}

// To returns the selected target unit.
func (v *View) To() string {
	return v.to.Selected()
}

// SelectUnits selects the named units, ignoring names that are not offered.
func (v *View) SelectUnits(from, to string) {
	v.from.Select(from)
	v.to.Select(to)
}

// Result returns the last successful result.
func (v *View) Result() *domain.ConversionResult {
	return v.result
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
