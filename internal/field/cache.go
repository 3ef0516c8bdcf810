package field

import (
	"fmt"
	"sync"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region cache

// Cache memoizes generated fields by their full input key. Regime
// parameters only change between frames, so in practice the cache holds
// one live entry per regime. Buffers handed out are shared; callers
// must treat them as read-only.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

// Get returns the memoized buffer for the inputs, generating on miss.
func (c *Cache) Get(width, height int, goal geom.Vec2, regime reward.Regime, params reward.Params) []byte {
	key := cacheKey(width, height, goal, regime, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if buf, ok := c.entries[key]; ok {
		return buf
	}
	buf := Generate(width, height, goal, regime, params)
	c.entries[key] = buf
	return buf
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(width, height int, goal geom.Vec2, regime reward.Regime, params reward.Params) string {
	return fmt.Sprintf("%dx%d|%g,%g|%s|t=%g g=%g lr=%g b=%g",
		width, height, goal.X, goal.Y, regime,
		params.Threshold, params.Gamma, params.LearningRate, params.BaseReward)
}

// #endregion cache
