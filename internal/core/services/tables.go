package services

import "github.com/custodia-labs/unitconv/internal/core/domain"

// unitFactor pairs a unit name with how many of that unit make up one base unit.
type unitFactor struct {
	name   string
	factor float64
}

// unitTable is an immutable conversion table for one linear category.
// names preserves display order; factors is keyed by name.
type unitTable struct {
	category domain.Category
	names    []string
	factors  map[string]float64
}

func newUnitTable(category domain.Category, entries ...unitFactor) unitTable {
	t := unitTable{
		category: category,
		names:    make([]string, 0, len(entries)),
		factors:  make(map[string]float64, len(entries)),
	}
	for _, e := range entries {
		t.names = append(t.names, e.name)
		t.factors[e.name] = e.factor
	}
	return t
}

// Units returns a copy of the unit names in display order.
func (t unitTable) Units() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// factor looks up a unit, failing with a typed error for unknown names.
func (t unitTable) factor(unit string) (float64, error) {
	f, ok := t.factors[unit]
	if !ok {
		return 0, &domain.UnknownUnitError{Category: t.category, Unit: unit}
	}
	return f, nil
}

// Base unit: meters.
var lengthTable = newUnitTable(domain.CategoryLength,
	unitFactor{"meters", 1},
	unitFactor{"kilometers", 0.001},
	unitFactor{"miles", 1 / 1609.34},
	unitFactor{"yards", 1 / 0.9144},
	unitFactor{"centimeters", 100},
	unitFactor{"millimeters", 1000},
	unitFactor{"foots", 3.28084},
	unitFactor{"micrometers", 1e6},
	unitFactor{"nanometers", 1e9},
	unitFactor{"inch", 39.3701},
	unitFactor{"nautical miles", 0.000539957},
)

// Base unit: grams.
var weightTable = newUnitTable(domain.CategoryWeight,
	unitFactor{"grams", 1},
	unitFactor{"kilograms", 0.001},
	unitFactor{"pounds", 1 / 453.592},
	unitFactor{"ounces", 1 / 28.3495},
)

// Base unit: liters.
var volumeTable = newUnitTable(domain.CategoryVolume,
	unitFactor{"liters", 1},
	unitFactor{"milliliters", 1000},
	unitFactor{"gallons", 1 / 3.78541},
	unitFactor{"cubic meters", 0.001},
	unitFactor{"cubic centimeters", 1000},
)

// Base unit: meters.
var heightTable = newUnitTable(domain.CategoryHeight,
	unitFactor{"meters", 1},
	unitFactor{"centimeters", 100},
	unitFactor{"feet", 3.28084},
	unitFactor{"inches", 39.3701},
)

// Temperature scale names.
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

var temperatureScales = []string{Celsius, Fahrenheit, Kelvin}

// currencyCodes is the display order of the currency selector.
var currencyCodes = []string{"USD", "INR", "EUR", "GBP", "AUD", "PKR", "SAR"}

// currencyRates maps source code to destination code to multiplier.
// The rates are hand-maintained; they are neither symmetric nor transitive.
var currencyRates = map[string]map[string]float64{
	"USD": {"INR": 87.17, "EUR": 0.95, "GBP": 0.79, "AUD": 1.59, "PKR": 280.22, "SAR": 3.75},
	"INR": {"USD": 0.011, "EUR": 0.011, "GBP": 0.0090, "AUD": 0.018, "PKR": 3.21, "SAR": 0.043},
	"EUR": {"USD": 1.05, "INR": 91.35, "GBP": 0.83, "AUD": 1.66, "PKR": 293.63, "SAR": 3.93},
	"GBP": {"USD": 1.27, "INR": 110.51, "EUR": 1.21, "AUD": 2.01, "PKR": 354.80, "SAR": 4.75},
	"AUD": {"USD": 0.63, "INR": 54.91, "EUR": 0.60, "GBP": 0.50, "PKR": 171.61, "SAR": 2.36},
	"PKR": {"USD": 0.0036, "INR": 0.31, "EUR": 0.0034, "GBP": 0.0028, "AUD": 0.0057, "SAR": 0.013},
	"SAR": {"USD": 0.27, "INR": 23.24, "EUR": 0.25, "GBP": 0.21, "AUD": 0.42, "PKR": 74.56},
}
