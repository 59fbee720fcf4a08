package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure display precision, conversion policy and server options.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsPrecisionCmd = &cobra.Command{
	Use:   "precision <digits>",
	Short: "Set the number of decimal places shown",
	Long: fmt.Sprintf(`Set the number of decimal places in displayed results.

Use %d to print the shortest exact representation (the default).
The maximum is %d.`, domain.ShortestPrecision, domain.MaxPrecision),
	Args: cobra.ExactArgs(1),
	RunE: runSettingsPrecision,
}

var settingsStrictTemperatureCmd = &cobra.Command{
	Use:   "strict-temperature <on|off>",
	Short: "Reject unrecognised temperature scales",
	Long: `When on (the default), converting to or from a scale other than Celsius,
Fahrenheit or Kelvin fails. When off, such conversions return the input unchanged.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsStrictTemperature,
}

var settingsDefaultCategoryCmd = &cobra.Command{
	Use:   "default-category [category]",
	Short: "Set the category preselected in the interactive form",
	Long: `Set the category preselected in the interactive form.
Without an argument, choose from a numbered list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsDefaultCategory,
}

var settingsRateLimitCmd = &cobra.Command{
	Use:   "rate-limit <requests-per-second>",
	Short: "Set the per-client request rate of the HTTP servers",
	Long:  `Set the per-client request rate of "serve" and "mcp serve --port". 0 disables limiting.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRateLimit,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsPrecisionCmd)
	settingsCmd.AddCommand(settingsStrictTemperatureCmd)
	settingsCmd.AddCommand(settingsDefaultCategoryCmd)
	settingsCmd.AddCommand(settingsRateLimitCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Precision: %s\n", describePrecision(settings.Display.Precision))
	cmd.Println()

	cmd.Println("[Conversion]")
	cmd.Printf("  Strict temperature: %s\n", onOff(settings.Conversion.StrictTemperature))
	cmd.Printf("  Default category: %s\n", settings.Conversion.DefaultCategory.Label())
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	if settings.Server.RateLimit > 0 {
		cmd.Printf("  Rate limit: %d requests/second per client\n", settings.Server.RateLimit)
	} else {
		cmd.Println("  Rate limit: disabled")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Unitconv Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Precision
	cmd.Println("Step 1: Display Precision")
	cmd.Println("-------------------------")
	cmd.Printf("Decimal places (%d = shortest exact) [%d]: ", domain.ShortestPrecision, current.Display.Precision)
	if input := readLine(reader); input != "" {
		p, err := strconv.Atoi(input)
		if err != nil || !domain.ValidPrecision(p) {
			return fmt.Errorf("%w: precision %q", domain.ErrInvalidInput, input)
		}
		current.Display.Precision = p
	}
	cmd.Println()

	// Step 2: Temperature policy
	cmd.Println("Step 2: Temperature Policy")
	cmd.Println("--------------------------")
	cmd.Printf("Reject unrecognised temperature scales? (on/off) [%s]: ", onOff(current.Conversion.StrictTemperature))
	if input := readLine(reader); input != "" {
		strict, err := parseOnOff(input)
		if err != nil {
			return err
		}
		current.Conversion.StrictTemperature = strict
	}
	cmd.Println()

	// Step 3: Default category
	cmd.Println("Step 3: Default Category")
	cmd.Println("------------------------")
	categories := domain.AllCategories()
	defaultIdx := 1
	for i, c := range categories {
		cmd.Printf("  %d. %s\n", i+1, c.Label())
		if c == current.Conversion.DefaultCategory {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(categories), defaultIdx)
	current.Conversion.DefaultCategory = categories[idx-1]
	cmd.Println()

	if err := settingsService.Save(current); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsPrecision(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: precision %q is not an integer", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetPrecision(p); err != nil {
		return fmt.Errorf("failed to set precision: %w", err)
	}

	cmd.Printf("Precision set to: %s\n", describePrecision(p))
	return nil
}

func runSettingsStrictTemperature(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	strict, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetStrictTemperature(strict); err != nil {
		return fmt.Errorf("failed to set temperature policy: %w", err)
	}

	cmd.Printf("Strict temperature: %s\n", onOff(strict))
	return nil
}

func runSettingsDefaultCategory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	var category domain.Category
	if len(args) == 1 {
		c, err := domain.ParseCategory(args[0])
		if err != nil {
			return err
		}
		category = c
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())

		cmd.Println("Select Default Category")
		cmd.Println("-----------------------")
		categories := domain.AllCategories()
		for i, c := range categories {
			cmd.Printf("  %d. %s\n", i+1, c.Label())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(categories), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		category = categories[idx-1]
	}

	if err := settingsService.SetDefaultCategory(category); err != nil {
		return fmt.Errorf("failed to set default category: %w", err)
	}

	cmd.Printf("Default category set to: %s\n", category.Label())
	return nil
}

func runSettingsRateLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: rate limit %q is not an integer", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetRateLimit(n); err != nil {
		return fmt.Errorf("failed to set rate limit: %w", err)
	}

	if n == 0 {
		cmd.Println("Rate limit disabled")
	} else {
		cmd.Printf("Rate limit set to: %d requests/second per client\n", n)
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults")
	return nil
}

func describePrecision(p int) string {
	if p == domain.ShortestPrecision {
		return "shortest exact"
	}
	return fmt.Sprintf("%d decimal places", p)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", domain.ErrInvalidInput, s)
	}
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
