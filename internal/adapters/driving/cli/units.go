package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

var unitsJSON bool

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List categories or the units of a category",
	Long: `Without an argument, list every conversion category with its units.
With a category, list the units it accepts, one per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func init() {
	unitsCmd.Flags().BoolVar(&unitsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	converter, err := requireConverter()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		catalog := converter.Catalog()
		if unitsJSON {
			return printJSON(cmd, catalog)
		}
		for _, info := range catalog {
			units := strings.Join(info.Units, ", ")
			if units == "" {
				units = "(radius only)"
			}
			cmd.Printf("%-12s %s\n", info.ID, units)
		}
		return nil
	}

	category, err := domain.ParseCategory(args[0])
	if err != nil {
		return err
	}

	units, err := converter.Units(category)
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}

	if unitsJSON {
		return printJSON(cmd, units)
	}
	if len(units) == 0 {
		cmd.Printf("%s takes a radius and has no units.\n", category.Label())
		return nil
	}
	for _, u := range units {
		cmd.Println(u)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
