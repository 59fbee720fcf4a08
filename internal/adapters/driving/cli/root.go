// Package cli provides the unitconv command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services holds the core services the commands drive.
type Services struct {
	Converter driving.ConverterService
	Settings  driving.SettingsService

	// Watch reports changes of the settings source until ctx is done.
	// It may be nil when settings cannot change at runtime.
	Watch func(ctx context.Context, onChange func()) error
}

// ConfigOptions selects where settings are read from.
type ConfigOptions struct {
	// Dir is the configuration directory; empty selects the default.
	Dir string

	// InMemory keeps settings in memory, ignoring any config file.
	InMemory bool
}

// ServiceBuilder constructs services from the parsed config flags.
type ServiceBuilder func(opts ConfigOptions) (*Services, error)

var (
	converterService driving.ConverterService
	settingsService  driving.SettingsService
	watchSettings    func(ctx context.Context, onChange func()) error
	serviceBuilder   ServiceBuilder
)

// isInteractive reports whether stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var errServicesNotConfigured = errors.New("converter service not configured")

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert units, currencies and circle areas",
	Long: `unitconv converts values between units of length, weight, temperature,
volume and height, converts currencies using a static rate table and
computes the area of a circle.

Run without a command in a terminal to open the interactive form.

Negative values must follow "--" so they are not read as flags:
  unitconv temperature -- -40 Celsius Fahrenheit`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runRoot,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.unitconv)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "use default settings without reading or writing the config file")
	rootCmd.MarkFlagsMutuallyExclusive("config-dir", "no-config")
}

// SetServices injects the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		converterService, settingsService, watchSettings = nil, nil, nil
		return
	}
	converterService = s.Converter
	settingsService = s.Settings
	watchSettings = s.Watch
}

// SetServiceBuilder registers a builder invoked once flags are parsed, so that
// --config-dir and --no-config take effect before services are created.
func SetServiceBuilder(b ServiceBuilder) {
	serviceBuilder = b
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceBuilder == nil {
		return nil
	}

	s, err := serviceBuilder(ConfigOptions{Dir: configDir, InMemory: noConfig})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return cmd.Help()
	}
	return runTUI(cmd, nil)
}

// requireConverter returns the configured converter service.
func requireConverter() (driving.ConverterService, error) {
	if converterService == nil {
		return nil, errServicesNotConfigured
	}
	return converterService, nil
}
