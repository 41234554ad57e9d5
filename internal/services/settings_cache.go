package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/example/stride/internal/models"
)

// SettingsLoader fetches the singleton settings document.
type SettingsLoader func(ctx context.Context) (models.SiteSettings, error)

// SettingsCache serves the singleton site settings with a short TTL so the
// many pages that read currency and payment toggles don't each hit the
// store. Admin updates call Invalidate.
type SettingsCache struct {
	loader SettingsLoader
	ttl    time.Duration

	mu        sync.Mutex
	cached    models.SiteSettings
	fetchedAt time.Time
	valid     bool
}

// NewSettingsCache constructs a SettingsCache over the given loader.
func NewSettingsCache(loader SettingsLoader, ttl time.Duration) *SettingsCache {
	return &SettingsCache{loader: loader, ttl: ttl}
}

// Get returns the cached settings, refreshing when the TTL has expired.
func (c *SettingsCache) Get(ctx context.Context) (models.SiteSettings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}
	return c.refreshLocked(ctx)
}

// Refresh forces a reload regardless of TTL.
func (c *SettingsCache) Refresh(ctx context.Context) (models.SiteSettings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

// Invalidate drops the cached copy; the next Get reloads.
func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

func (c *SettingsCache) refreshLocked(ctx context.Context) (models.SiteSettings, error) {
	settings, err := c.loader(ctx)
	if err != nil {
		// Serve the stale copy rather than fail a read-only page.
		if c.valid {
			return c.cached, nil
		}
		return models.SiteSettings{}, err
	}

	c.cached = settings
	c.fetchedAt = time.Now()
	c.valid = true
	return c.cached, nil
}

// DBSettingsLoader loads (and lazily creates) the singleton settings row.
func DBSettingsLoader(db *gorm.DB) SettingsLoader {
	return func(ctx context.Context) (models.SiteSettings, error) {
		var settings models.SiteSettings
		err := db.WithContext(ctx).Order("created_at asc").First(&settings).Error
		if err == gorm.ErrRecordNotFound {
			settings = models.SiteSettings{Currency: "USD", EnableCOD: true}
			if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
				return models.SiteSettings{}, err
			}
			return settings, nil
		}
		return settings, err
	}
}
