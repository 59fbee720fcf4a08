package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCategory indicates a conversion category that is not offered.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidSettings indicates stored settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// Conversion Errors.

	// ErrUnknownUnit indicates a unit name absent from the category's table.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnsupportedTemperaturePair indicates a temperature pair outside
	// the supported Celsius, Fahrenheit and Kelvin scales.
	ErrUnsupportedTemperaturePair = errors.New("unsupported temperature pair")

	// ErrRateUnavailable indicates the rate table has no entry for a currency pair.
	ErrRateUnavailable = errors.New("conversion rate unavailable")

	// ErrResultOutOfRange indicates a finite input whose result overflows float64.
	ErrResultOutOfRange = errors.New("result out of range")
)

// UnknownUnitError reports a unit name that is not part of a category's table.
type UnknownUnitError struct {
	Category Category
	Unit     string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown %s unit %q", e.Category.Label(), e.Unit)
}

// Unwrap allows errors.Is(err, ErrUnknownUnit).
func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// UnsupportedTemperaturePairError reports a temperature pair with no formula.
type UnsupportedTemperaturePairError struct {
	From string
	To   string
}

func (e *UnsupportedTemperaturePairError) Error() string {
	return fmt.Sprintf("temperature conversion from %q to %q not supported", e.From, e.To)
}

// Unwrap allows errors.Is(err, ErrUnsupportedTemperaturePair).
func (e *UnsupportedTemperaturePairError) Unwrap() error {
	return ErrUnsupportedTemperaturePair
}

// RateUnavailableError reports a currency pair missing from the rate table.
type RateUnavailableError struct {
	From string
	To   string
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("conversion rate from %s to %s not available", e.From, e.To)
}

// Unwrap allows errors.Is(err, ErrRateUnavailable).
func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}
