package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/core/services"
)

// setupTestServices wires in-memory services and restores the previous ones
// when the test ends.
func setupTestServices(t *testing.T) *services.SettingsService {
	t.Helper()

	oldConverter, oldSettings, oldWatch := converterService, settingsService, watchSettings
	oldInteractive := isInteractive

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(&Services{
		Converter: services.NewConverterService(settings),
		Settings:  settings,
	})
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		converterService, settingsService, watchSettings = oldConverter, oldSettings, oldWatch
		isInteractive = oldInteractive
	})
	return settings
}

// resetFlags restores every flag in the command tree to its default.
// Cobra keeps parsed flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput runs the root command reading stdin from input.
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
		rootCmd.SetIn(io.Reader(os.Stdin))
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
