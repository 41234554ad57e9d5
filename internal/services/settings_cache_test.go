package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stride/internal/models"
)

func countingLoader(settings *models.SiteSettings, fail *bool) (SettingsLoader, *int) {
	calls := new(int)
	return func(ctx context.Context) (models.SiteSettings, error) {
		*calls++
		if fail != nil && *fail {
			return models.SiteSettings{}, errors.New("store unavailable")
		}
		return *settings, nil
	}, calls
}

func TestSettingsCacheServesWithinTTL(t *testing.T) {
	settings := models.SiteSettings{Currency: "USD"}
	loader, calls := countingLoader(&settings, nil)
	cache := NewSettingsCache(loader, time.Minute)

	for i := 0; i < 5; i++ {
		got, err := cache.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "USD", got.Currency)
	}

	assert.Equal(t, 1, *calls)
}

func TestSettingsCacheInvalidateForcesReload(t *testing.T) {
	settings := models.SiteSettings{Currency: "USD"}
	loader, calls := countingLoader(&settings, nil)
	cache := NewSettingsCache(loader, time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	settings.Currency = "EUR"
	cache.Invalidate()

	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 2, *calls)
}

func TestSettingsCacheServesStaleOnLoaderError(t *testing.T) {
	settings := models.SiteSettings{Currency: "USD"}
	fail := false
	loader, _ := countingLoader(&settings, &fail)
	cache := NewSettingsCache(loader, time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	fail = true
	got, err := cache.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)
}

func TestSettingsCacheErrorWithNothingCached(t *testing.T) {
	fail := true
	loader, _ := countingLoader(&models.SiteSettings{}, &fail)
	cache := NewSettingsCache(loader, time.Minute)

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
}

func TestSettingsCacheExpiredTTLReloads(t *testing.T) {
	settings := models.SiteSettings{Currency: "USD"}
	loader, calls := countingLoader(&settings, nil)
	cache := NewSettingsCache(loader, time.Nanosecond)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}
