package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive converter form",
	Long: `Launch the interactive terminal form for unitconv.

Pick a conversion type from the menu, enter a value, choose the units
and press Enter to convert.

Controls:
  ↑/k, ↓/j    - Navigate the menu
  1-9         - Jump to a menu entry
  Enter       - Select / Convert
  Tab         - Next field
  ←/→         - Change unit
  Ctrl+X      - Swap units
  Esc         - Back
  ?           - Help
  q, Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// newProgram starts the bubbletea program; replaced in tests.
var newProgram = func(ctx context.Context, model tea.Model) program {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
}

// program is the subset of *tea.Program used by the tui command.
type program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(converterService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	app.WithContext(ctx)
	p := newProgram(ctx, app)

	// The form is long-running, so follow edits to the config file.
	if watchSettings != nil {
		if err := watchSettings(ctx, func() { p.Send(messages.SettingsReloaded{}) }); err != nil {
			logger.Warn("settings will not reload: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// commandContext returns the command's context, or Background if unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
