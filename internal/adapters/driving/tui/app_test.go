package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/services"
)

func newTestPorts() *Ports {
	settings := services.NewSettingsService(memory.NewConfigStore())
	return NewPorts(services.NewConverterService(settings), settings)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app
}

// send delivers a message and feeds back the app messages its commands
// produce. Framework messages such as cursor blinks end the chain.
// Keys typed into the value input return blocking blink ticks, so tests
// deliver those with app.Update directly.
func send(app *App, msg tea.Msg) {
	_, cmd := app.Update(msg)
	for i := 0; cmd != nil && i < 4; i++ {
		next := cmd()
		if !isAppMessage(next) {
			return
		}
		_, cmd = app.Update(next)
	}
}

func isAppMessage(msg tea.Msg) bool {
	switch msg.(type) {
	case messages.ViewChanged, messages.CategorySelected, messages.ConversionCompleted,
		messages.ErrorOccurred, messages.Quit:
		return true
	}
	return false
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingConverterService)
	assert.Nil(t, app)
}

func TestNewApp_PreselectsDefaultCategory(t *testing.T) {
	ports := newTestPorts()
	require.NoError(t, ports.Settings.SetDefaultCategory(domain.CategoryCurrency))

	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.Equal(t, 3, app.menuView.Selected())
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
}

func TestApp_MenuToConverter(t *testing.T) {
	app := newTestApp(t)

	send(app, tea.KeyMsg{Type: tea.KeyEnter}) // Length

	assert.Equal(t, messages.ViewConverter, app.CurrentView())
	assert.Equal(t, domain.CategoryLength, app.Category())
	assert.Contains(t, app.View(), "From:")
}

func TestApp_FullConversionFlow(t *testing.T) {
	app := newTestApp(t)

	send(app, key('2')) // Weight
	require.Equal(t, domain.CategoryWeight, app.Category())

	// value 1, from kilograms (tab, right), to grams (tab, left)
	app.Update(key('1'))
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, app.Err())
	require.NotNil(t, app.Result())
	assert.Equal(t, 1000.0, app.Result().Value)
	assert.Contains(t, app.View(), "1 kilograms = 1000 grams")
}

func TestApp_ConversionError(t *testing.T) {
	app := newTestApp(t)
	send(app, messages.CategorySelected{Category: domain.CategoryLength})

	app.Update(key('x'))
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, errors.Is(app.Err(), domain.ErrInvalidInput))
	assert.Contains(t, app.View(), "Error")
}

func TestApp_EscFromConverterReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	send(app, messages.CategorySelected{Category: domain.CategoryHeight})

	send(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.Contains(t, app.View(), "Choose a conversion type")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)

	send(app, key('?'))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "How to Use")

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	send(app, messages.CategorySelected{Category: domain.CategoryVolume})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "boom")
}

func TestApp_SettingsReloaded(t *testing.T) {
	ports := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)
	require.Equal(t, 0, app.menuView.Selected())

	require.NoError(t, ports.Settings.SetDefaultCategory(domain.CategoryHeight))
	app.Update(messages.SettingsReloaded{})

	assert.Equal(t, 5, app.menuView.Selected())
}

func TestApp_ViewChanged(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}
