package driving

import "github.com/custodia-labs/unitconv/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetPrecision updates the display precision.
	SetPrecision(precision int) error

	// SetStrictTemperature toggles rejection of unrecognised temperature pairs.
	SetStrictTemperature(strict bool) error

	// SetDefaultCategory updates the category preselected by interactive surfaces.
	SetDefaultCategory(category domain.Category) error

	// SetRateLimit updates the per-client request rate of the HTTP surfaces.
	SetRateLimit(perSecond int) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
