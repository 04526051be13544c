package portfolio

import (
	"sync"
	"time"
)

// AssetCache holds the loaded blog asset for a TTL.
type AssetCache struct {
	mu      sync.RWMutex
	asset   *BlogAsset
	fetched time.Time
	ttl     time.Duration
	load    func() (BlogAsset, error)
	now     func() time.Time
}

// NewAssetCache creates an AssetCache that calls load on a miss.
func NewAssetCache(ttl time.Duration, load func() (BlogAsset, error)) *AssetCache {
	return &AssetCache{ttl: ttl, load: load, now: time.Now}
}

func (c *AssetCache) valid() bool {
	return c.asset != nil && c.now().Sub(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read reloads the asset.
func (c *AssetCache) Invalidate() {
	c.mu.Lock()
	c.asset = nil
	c.mu.Unlock()
}

// Get returns the cached asset, loading it when the cache is empty or stale.
// Load failures are not cached.
func (c *AssetCache) Get() (BlogAsset, error) {
	c.mu.RLock()
	if c.valid() {
		a := *c.asset
		c.mu.RUnlock()
		return a, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return *c.asset, nil
	}
	a, err := c.load()
	if err != nil {
		return BlogAsset{}, err
	}
	c.asset = &a
	c.fetched = c.now()
	return a, nil
}
