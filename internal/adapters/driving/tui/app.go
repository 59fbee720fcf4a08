package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/views/converter"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView lists the categories.
	menuView *menu.View

	// converterView is the form for the selected category.
	converterView *converter.View

	// helpView shows the usage steps.
	helpView *help.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s, ports.Converter.Categories()),
		converterView: converter.NewView(s, km, ports.Converter),
		helpView:      help.NewView(s, km),
		currentView:   messages.ViewMenu, // Start with menu
	}
	a.applySettings()

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.converterView.WithContext(ctx)
	return a
}

// applySettings moves the menu cursor to the configured default category.
func (a *App) applySettings() {
	if a.ports.Settings == nil {
		return
	}
	cfg, err := a.ports.Settings.Get()
	if err != nil {
		logger.Warn("tui: reading settings: %v", err)
		return
	}
	a.menuView.SelectCategory(cfg.Conversion.DefaultCategory)
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("unitconv - Unit Converter"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewConverter:
			a.converterView, cmd = a.converterView.Update(msg)
			a.err = a.converterView.Err()
		case messages.ViewHelp:
			a.helpView, cmd = a.helpView.Update(msg)
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.CategorySelected:
		a.currentView = messages.ViewConverter
		if err := a.converterView.SetCategory(msg.Category); err != nil {
			a.err = err
			return a, nil
		}
		a.err = nil
		return a, a.converterView.Init()

	case messages.ConversionCompleted:
		a.converterView, cmd = a.converterView.Update(msg)
		a.err = a.converterView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewConverter {
			a.converterView, cmd = a.converterView.Update(msg)
		}
		return a, cmd

	case messages.SettingsReloaded:
		if a.currentView == messages.ViewMenu {
			a.applySettings()
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the form
	if a.currentView == messages.ViewConverter {
		a.converterView, cmd = a.converterView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewConverter:
		return a.converterView.View()
	case messages.ViewHelp:
		return a.helpView.View()
	default:
		return a.menuView.View()
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Category returns the category shown by the converter form.
func (a *App) Category() domain.Category {
	return a.converterView.Category()
}

// Result returns the last successful conversion.
func (a *App) Result() *domain.ConversionResult {
	return a.converterView.Result()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.converterView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, height)
}
