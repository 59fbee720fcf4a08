package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

func init() {
	for _, c := range domain.AllCategories() {
		if c.HasUnits() {
			rootCmd.AddCommand(newConvertCmd(c))
		}
	}
	rootCmd.AddCommand(areaCmd)
}

// newConvertCmd builds the `unitconv <category> <value> <from> <to>` command.
func newConvertCmd(category domain.Category) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <%s> <from> <to>", category, strings.ToLower(category.ValueLabel())),
		Short: "Convert " + category.Description(),
		Long: fmt.Sprintf(`Convert a value between two %s units.

Unit names are case-sensitive; quote names containing spaces.
Surrounding whitespace is ignored.
Run "unitconv units %s" to list them.`, strings.ToLower(category.Label()), category),
		Example: convertExample(category),
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(category, args[0])
			if err != nil {
				return err
			}
			return runConversion(cmd, domain.ConversionRequest{
				Category: category,
				Value:    value,
				From:     strings.TrimSpace(args[1]),
				To:       strings.TrimSpace(args[2]),
			})
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 || len(args) > 2 || converterService == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			units, err := converterService.Units(category)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return units, cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().Bool("json", false, "output the result as JSON")
	return cmd
}

func convertExample(category domain.Category) string {
	switch category {
	case domain.CategoryLength:
		return `  unitconv length 5 kilometers miles
  unitconv length 3 "nautical miles" meters`
	case domain.CategoryWeight:
		return "  unitconv weight 2 kilograms pounds"
	case domain.CategoryTemperature:
		return `  unitconv temperature 100 Celsius Fahrenheit
  unitconv temperature -- -40 Celsius Fahrenheit`
	case domain.CategoryCurrency:
		return "  unitconv currency 1 USD INR"
	case domain.CategoryVolume:
		return "  unitconv volume 1 gallons liters"
	case domain.CategoryHeight:
		return "  unitconv height 6 feet centimeters"
	default:
		return ""
	}
}

var areaCmd = &cobra.Command{
	Use:     "area <radius>",
	Short:   "Compute the area of a circle",
	Long:    `Compute the area of a circle from its radius (pi * r * r).`,
	Example: "  unitconv area 2.5",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		radius, err := parseValue(domain.CategoryCircleArea, args[0])
		if err != nil {
			return err
		}
		return runConversion(cmd, domain.ConversionRequest{
			Category: domain.CategoryCircleArea,
			Value:    radius,
		})
	},
}

func init() {
	areaCmd.Flags().Bool("json", false, "output the result as JSON")
}

func runConversion(cmd *cobra.Command, req domain.ConversionRequest) error {
	converter, err := requireConverter()
	if err != nil {
		return err
	}

	result, err := converter.Convert(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printJSON(cmd, result)
	}

	cmd.Println(result.Display)
	return nil
}

// parseValue reads a numeric argument and applies the category's input policy.
func parseValue(category domain.Category, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, raw)
	}
	if err := category.CheckInput(v); err != nil {
		return 0, err
	}
	return v, nil
}
