package services

import (
	"fmt"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPrecision         = "display.precision"
	keyStrictTemperature = "conversion.strict_temperature"
	keyDefaultCategory   = "conversion.default_category"
	keyServerAddr        = "server.addr"
	keyServerRateLimit   = "server.rate_limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out-of-range stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Display: domain.DisplaySettings{
			Precision: s.getPrecision(defaults.Display.Precision),
		},
		Conversion: domain.ConversionSettings{
			StrictTemperature: s.getBool(keyStrictTemperature, defaults.Conversion.StrictTemperature),
			DefaultCategory:   s.getCategory(defaults.Conversion.DefaultCategory),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			RateLimit: s.getRateLimit(defaults.Server.RateLimit),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyPrecision, settings.Display.Precision); err != nil {
		return fmt.Errorf("save display precision: %w", err)
	}
	if err := s.configStore.Set(keyStrictTemperature, settings.Conversion.StrictTemperature); err != nil {
		return fmt.Errorf("save strict temperature: %w", err)
	}
	if err := s.configStore.Set(keyDefaultCategory, settings.Conversion.DefaultCategory.String()); err != nil {
		return fmt.Errorf("save default category: %w", err)
	}
	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	if err := s.configStore.Set(keyServerRateLimit, settings.Server.RateLimit); err != nil {
		return fmt.Errorf("save server rate_limit: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetPrecision updates the display precision.
func (s *SettingsService) SetPrecision(precision int) error {
	if !domain.ValidPrecision(precision) {
		return fmt.Errorf("%w: precision must be between %d and %d",
			domain.ErrInvalidSettings, domain.ShortestPrecision, domain.MaxPrecision)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Precision = precision
	return s.Save(settings)
}

// SetStrictTemperature toggles rejection of unrecognised temperature pairs.
func (s *SettingsService) SetStrictTemperature(strict bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Conversion.StrictTemperature = strict
	return s.Save(settings)
}

// SetDefaultCategory updates the category preselected by interactive surfaces.
func (s *SettingsService) SetDefaultCategory(category domain.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Conversion.DefaultCategory = category
	return s.Save(settings)
}

// SetRateLimit updates the per-client request rate of the HTTP surfaces.
func (s *SettingsService) SetRateLimit(perSecond int) error {
	if perSecond < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", domain.ErrInvalidSettings)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Server.RateLimit = perSecond
	return s.Save(settings)
}

// Validate checks if the stored settings are usable as written.
// Unlike Get, it reports stored values that would be replaced by defaults.
func (s *SettingsService) Validate() error {
	if _, ok := s.configStore.Get(keyPrecision); ok {
		if p := s.configStore.GetInt(keyPrecision); !domain.ValidPrecision(p) {
			return fmt.Errorf("%w: stored precision %d out of range", domain.ErrInvalidSettings, p)
		}
	}
	if val := s.configStore.GetString(keyDefaultCategory); val != "" {
		if !domain.Category(val).IsValid() {
			return fmt.Errorf("%w: stored default category %q", domain.ErrInvalidSettings, val)
		}
	}
	if s.configStore.GetInt(keyServerRateLimit) < 0 {
		return fmt.Errorf("%w: stored rate limit is negative", domain.ErrInvalidSettings)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getPrecision checks presence rather than zero, since 0 decimals is valid.
func (s *SettingsService) getPrecision(defaultVal int) int {
	if _, exists := s.configStore.Get(keyPrecision); !exists {
		return defaultVal
	}
	p := s.configStore.GetInt(keyPrecision)
	if !domain.ValidPrecision(p) {
		return defaultVal
	}
	return p
}

func (s *SettingsService) getRateLimit(defaultVal int) int {
	if _, exists := s.configStore.Get(keyServerRateLimit); !exists {
		return defaultVal
	}
	n := s.configStore.GetInt(keyServerRateLimit)
	if n < 0 {
		return defaultVal
	}
	return n
}

func (s *SettingsService) getCategory(defaultVal domain.Category) domain.Category {
	val := s.configStore.GetString(keyDefaultCategory)
	if val == "" {
		return defaultVal
	}
	c := domain.Category(val)
	if !c.IsValid() {
		return defaultVal
	}
	return c
}
