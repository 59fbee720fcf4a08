package domain

import (
	"fmt"
	"math"
	"strings"
)

const unknownDescription = "Unknown"

// Category identifies a family of conversions offered to the user.
type Category string

// Available conversion categories.
const (
	// CategoryLength converts between distance units.
	CategoryLength Category = "length"

	// CategoryWeight converts between mass units.
	CategoryWeight Category = "weight"

	// CategoryTemperature converts between temperature scales.
	CategoryTemperature Category = "temperature"

	// CategoryCurrency converts between currencies using static rates.
	CategoryCurrency Category = "currency"

	// CategoryVolume converts between capacity units.
	CategoryVolume Category = "volume"

	// CategoryHeight converts between body-height units.
	CategoryHeight Category = "height"

	// CategoryCircleArea computes the area of a circle from its radius.
	CategoryCircleArea Category = "circle_area"
)

// AbsoluteZeroCelsius is the lowest temperature the input form accepts.
const AbsoluteZeroCelsius = -273.15

// AllCategories returns every category in menu order.
func AllCategories() []Category {
	return []Category{
		CategoryLength,
		CategoryWeight,
		CategoryTemperature,
		CategoryCurrency,
		CategoryVolume,
		CategoryHeight,
		CategoryCircleArea,
	}
}

// ParseCategory resolves a category from its identifier or its label.
// Matching ignores case, so "Circle Area", "circle_area" and "circle-area"
// all resolve to CategoryCircleArea.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)

	c := Category(norm)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLength, CategoryWeight, CategoryTemperature, CategoryCurrency,
		CategoryVolume, CategoryHeight, CategoryCircleArea:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Label returns the menu label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryLength:
		return "Length"
	case CategoryWeight:
		return "Weight"
	case CategoryTemperature:
		return "Temperature"
	case CategoryCurrency:
		return "Currency"
	case CategoryVolume:
		return "Volume"
	case CategoryHeight:
		return "Height"
	case CategoryCircleArea:
		return "Circle Area"
	default:
		return unknownDescription
	}
}

// Description returns a human-readable description of the category.
func (c Category) Description() string {
	switch c {
	case CategoryLength:
		return "Length (meters, miles, inches, ...)"
	case CategoryWeight:
		return "Weight (grams, pounds, ounces, ...)"
	case CategoryTemperature:
		return "Temperature (Celsius, Fahrenheit, Kelvin)"
	case CategoryCurrency:
		return "Currency (static exchange rates)"
	case CategoryVolume:
		return "Volume (liters, gallons, ...)"
	case CategoryHeight:
		return "Height (meters, feet, inches, ...)"
	case CategoryCircleArea:
		return "Circle Area (from radius)"
	default:
		return unknownDescription
	}
}

// HasUnits returns true if the category converts between two units.
// Circle area takes a bare radius instead.
func (c Category) HasUnits() bool {
	return c.IsValid() && c != CategoryCircleArea
}

// ValueLabel returns the prompt for the numeric input of the category.
func (c Category) ValueLabel() string {
	switch c {
	case CategoryCurrency:
		return "Amount"
	case CategoryCircleArea:
		return "Radius"
	default:
		return "Value"
	}
}

// MinValue returns the lowest value the input form accepts for the category.
// The conversion engine itself accepts any finite number.
func (c Category) MinValue() float64 {
	if c == CategoryTemperature {
		return AbsoluteZeroCelsius
	}
	return 0
}

// CheckInput validates a value collected from the user for this category.
func (c Category) CheckInput(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value must be a finite number", ErrInvalidInput)
	}
	if v < c.MinValue() {
		return fmt.Errorf("%w: %s must be at least %g", ErrInvalidInput, strings.ToLower(c.ValueLabel()), c.MinValue())
	}
	return nil
}

// CategoryInfo describes a category and its units for listing surfaces.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	ValueLabel  string   `json:"value_label"`
	Units       []string `json:"units"`
}
