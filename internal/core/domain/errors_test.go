package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownCategory", ErrUnknownCategory},
		{"ErrInvalidSettings", ErrInvalidSettings},
		{"ErrUnknownUnit", ErrUnknownUnit},
		{"ErrUnsupportedTemperaturePair", ErrUnsupportedTemperaturePair},
		{"ErrRateUnavailable", ErrRateUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrInvalidInput,
		ErrUnknownCategory,
		ErrInvalidSettings,
		ErrUnknownUnit,
		ErrUnsupportedTemperaturePair,
		ErrRateUnavailable,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		assert.False(t, seen[err.Error()], "duplicate error message: %s", err)
		seen[err.Error()] = true
	}
}

func TestUnknownUnitError(t *testing.T) {
	err := &UnknownUnitError{Category: CategoryLength, Unit: "parsecs"}

	assert.Equal(t, `unknown Length unit "parsecs"`, err.Error())
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.NotErrorIs(t, err, ErrRateUnavailable)
}

func TestUnsupportedTemperaturePairError(t *testing.T) {
	err := &UnsupportedTemperaturePairError{From: "Celsius", To: "Rankine"}

	assert.Contains(t, err.Error(), `"Celsius"`)
	assert.Contains(t, err.Error(), `"Rankine"`)
	assert.ErrorIs(t, err, ErrUnsupportedTemperaturePair)
}

func TestRateUnavailableError(t *testing.T) {
	var err error = &RateUnavailableError{From: "USD", To: "JPY"}

	assert.Equal(t, "conversion rate from USD to JPY not available", err.Error())
	assert.ErrorIs(t, err, ErrRateUnavailable)

	// Survives wrapping by adapters
	wrapped := fmt.Errorf("currency conversion failed: %w", err)
	var rateErr *RateUnavailableError
	require.True(t, errors.As(wrapped, &rateErr))
	assert.Equal(t, "USD", rateErr.From)
	assert.Equal(t, "JPY", rateErr.To)
}
