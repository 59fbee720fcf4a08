package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("display.precision", 0)
	_ = store.Set("conversion.strict_temperature", false)
	_ = store.Set("conversion.default_category", "currency")
	_ = store.Set("server.addr", ":9000")
	_ = store.Set("server.rate_limit", int64(0))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 0, settings.Display.Precision)
	assert.False(t, settings.Conversion.StrictTemperature)
	assert.Equal(t, domain.CategoryCurrency, settings.Conversion.DefaultCategory)
	assert.Equal(t, ":9000", settings.Server.Addr)
	assert.Equal(t, 0, settings.Server.RateLimit)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("display.precision", 99)
	_ = store.Set("conversion.default_category", "pressure")
	_ = store.Set("server.rate_limit", -4)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Display.Precision, settings.Display.Precision)
	assert.Equal(t, defaults.Conversion.DefaultCategory, settings.Conversion.DefaultCategory)
	assert.Equal(t, defaults.Server.RateLimit, settings.Server.RateLimit)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Display.Precision = 4
	settings.Conversion.DefaultCategory = domain.CategoryVolume

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, 4, store.GetInt("display.precision"))
	assert.Equal(t, "volume", store.GetString("conversion.default_category"))
	assert.True(t, store.GetBool("conversion.strict_temperature"))
}

func TestSettingsService_Save_NotifiesWatchersOnce(t *testing.T) {
	store := memory.NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	require.NoError(t, store.Watch(ctx, func() { calls++ }))

	require.NoError(t, NewSettingsService(store).SetPrecision(3))

	assert.Equal(t, 1, calls)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultAppSettings()
	settings.Server.Addr = ""

	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidSettings)
}

func TestSettingsService_SetPrecision(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetPrecision(3))
	settings, _ := service.Get()
	assert.Equal(t, 3, settings.Display.Precision)

	assert.ErrorIs(t, service.SetPrecision(16), domain.ErrInvalidSettings)
	assert.ErrorIs(t, service.SetPrecision(-2), domain.ErrInvalidSettings)
}

func TestSettingsService_SetStrictTemperature(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetStrictTemperature(false))
	settings, _ := service.Get()
	assert.False(t, settings.Conversion.StrictTemperature)

	require.NoError(t, service.SetStrictTemperature(true))
	settings, _ = service.Get()
	assert.True(t, settings.Conversion.StrictTemperature)
}

func TestSettingsService_SetDefaultCategory(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetDefaultCategory(domain.CategoryTemperature))
	settings, _ := service.Get()
	assert.Equal(t, domain.CategoryTemperature, settings.Conversion.DefaultCategory)

	assert.ErrorIs(t, service.SetDefaultCategory("pressure"), domain.ErrUnknownCategory)
}

func TestSettingsService_SetRateLimit(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetRateLimit(0))
	settings, _ := service.Get()
	assert.Equal(t, 0, settings.Server.RateLimit)

	assert.ErrorIs(t, service.SetRateLimit(-1), domain.ErrInvalidSettings)
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		service := NewSettingsService(memory.NewConfigStore())
		assert.NoError(t, service.Validate())
	})

	t.Run("stored precision out of range", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("display.precision", 42)
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidSettings)
	})

	t.Run("stored category unknown", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("conversion.default_category", "pressure")
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidSettings)
	})

	t.Run("stored rate limit negative", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("server.rate_limit", -3)
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidSettings)
	})
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
