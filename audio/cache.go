package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered buffers that are replayed without regeneration
type soundCache struct {
	mu    sync.RWMutex
	store map[string]*beep.Buffer
}

func newSoundCache() *soundCache {
	return &soundCache{
		store: make(map[string]*beep.Buffer),
	}
}

// get returns the cached buffer for key, rendering it with gen on first use
func (c *soundCache) get(key string, gen func() *beep.Buffer) *beep.Buffer {
	c.mu.RLock()
	if buf, ok := c.store[key]; ok {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[key]; ok {
		return buf
	}

	buf := gen()
	c.store[key] = buf
	return buf
}
