package domain

import "fmt"

// Display precision bounds. ShortestPrecision prints the shortest
// representation that round-trips the float64 exactly.
const (
	ShortestPrecision = -1
	MaxPrecision      = 15
)

// DisplaySettings controls how results are rendered.
type DisplaySettings struct {
	// Precision is the number of decimal places shown, or ShortestPrecision.
	Precision int
}

// ConversionSettings controls engine policy that the user may choose.
type ConversionSettings struct {
	// StrictTemperature rejects unrecognised temperature pairs.
	// When false they return the input unchanged.
	StrictTemperature bool

	// DefaultCategory is the category preselected by interactive surfaces.
	DefaultCategory Category
}

// ServerSettings holds configuration for the HTTP surfaces.
type ServerSettings struct {
	// Addr is the listen address for `unitconv serve`.
	Addr string

	// RateLimit is requests per second per client; 0 disables limiting.
	RateLimit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Display holds result formatting settings.
	Display DisplaySettings

	// Conversion holds conversion policy settings.
	Conversion ConversionSettings

	// Server holds HTTP server settings.
	Server ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			Precision: ShortestPrecision,
		},
		Conversion: ConversionSettings{
			StrictTemperature: true,
			DefaultCategory:   CategoryLength,
		},
		Server: ServerSettings{
			Addr:      "127.0.0.1:8080",
			RateLimit: 10,
		},
	}
}

// ValidPrecision returns true if p is an accepted display precision.
func ValidPrecision(p int) bool {
	return p >= ShortestPrecision && p <= MaxPrecision
}

// Validate checks that all settings hold usable values.
func (s AppSettings) Validate() error {
	if !ValidPrecision(s.Display.Precision) {
		return fmt.Errorf("%w: precision %d out of range [%d, %d]",
			ErrInvalidSettings, s.Display.Precision, ShortestPrecision, MaxPrecision)
	}
	if !s.Conversion.DefaultCategory.IsValid() {
		return fmt.Errorf("%w: default category %q", ErrInvalidSettings, s.Conversion.DefaultCategory)
	}
	if s.Server.Addr == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidSettings)
	}
	if s.Server.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit %d is negative", ErrInvalidSettings, s.Server.RateLimit)
	}
	return nil
}
