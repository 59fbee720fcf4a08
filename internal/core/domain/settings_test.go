package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, ShortestPrecision, s.Display.Precision)
	assert.True(t, s.Conversion.StrictTemperature)
	assert.Equal(t, CategoryLength, s.Conversion.DefaultCategory)
	assert.NotEmpty(t, s.Server.Addr)
	assert.Equal(t, 10, s.Server.RateLimit)
	assert.NoError(t, s.Validate())
}

func TestValidPrecision(t *testing.T) {
	assert.True(t, ValidPrecision(-1))
	assert.True(t, ValidPrecision(0))
	assert.True(t, ValidPrecision(15))
	assert.False(t, ValidPrecision(-2))
	assert.False(t, ValidPrecision(16))
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"precision too small", func(s *AppSettings) { s.Display.Precision = -5 }},
		{"precision too large", func(s *AppSettings) { s.Display.Precision = 40 }},
		{"unknown default category", func(s *AppSettings) { s.Conversion.DefaultCategory = "pressure" }},
		{"empty address", func(s *AppSettings) { s.Server.Addr = "" }},
		{"negative rate limit", func(s *AppSettings) { s.Server.RateLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}
