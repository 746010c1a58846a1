package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryItem struct {
	data     []byte
	expireAt time.Time
}

func (m *memoryItem) expired() bool {
	return !m.expireAt.IsZero() && time.Now().After(m.expireAt)
}

// MemoryCache implements Service using in-memory storage with LRU eviction.
// Values are stored as JSON so Get behaves identically to the Redis backend.
type MemoryCache struct {
	data          map[string]*memoryItem
	access        map[string]time.Time
	mutex         sync.RWMutex
	maxSize       int
	cleanupTicker *time.Ticker
	done          chan struct{}
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	cfg := &MemoryConfig{
		MaxSize:         1000,
		CleanupInterval: 5 * time.Minute,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	mc := &MemoryCache{
		data:          make(map[string]*memoryItem),
		access:        make(map[string]time.Time),
		maxSize:       cfg.MaxSize,
		cleanupTicker: time.NewTicker(cfg.CleanupInterval),
		done:          make(chan struct{}),
	}

	go mc.cleanupExpired()
	return mc
}

func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		var err error
		data, err = json.Marshal(value)
		if err != nil {
			return err
		}
	}

	var expireAt time.Time
	if expiration > 0 {
		expireAt = time.Now().Add(expiration)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.data) >= c.maxSize {
		c.evictOldest()
	}

	c.data[key] = &memoryItem{data: data, expireAt: expireAt}
	c.access[key] = time.Now()
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mutex.RLock()
	item, ok := c.data[key]
	c.mutex.RUnlock()

	if !ok || item.expired() {
		if ok {
			c.mutex.Lock()
			delete(c.data, key)
			delete(c.access, key)
			c.mutex.Unlock()
		}
		return ErrCacheMiss
	}

	c.mutex.Lock()
	c.access[key] = time.Now()
	c.mutex.Unlock()

	switch v := dest.(type) {
	case *string:
		*v = string(item.data)
		return nil
	case *[]byte:
		*v = append([]byte(nil), item.data...)
		return nil
	}

	return json.Unmarshal(item.data, dest)
}

func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, key := range keys {
		delete(c.data, key)
		delete(c.access, key)
	}
	return nil
}

func (c *MemoryCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	for _, key := range keys {
		if item, ok := c.data[key]; ok && !item.expired() {
			return true, nil
		}
	}
	return false, nil
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() error {
	c.cleanupTicker.Stop()
	close(c.done)
	return nil
}

// evictOldest removes the least recently used entry. Caller must hold the lock.
func (c *MemoryCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, at := range c.access {
		if oldestKey == "" || at.Before(oldestTime) {
			oldestKey = key
			oldestTime = at
		}
	}
	if oldestKey != "" {
		delete(c.data, oldestKey)
		delete(c.access, oldestKey)
	}
}

func (c *MemoryCache) cleanupExpired() {
	for {
		select {
		case <-c.done:
			return
		case <-c.cleanupTicker.C:
			c.mutex.Lock()
			for key, item := range c.data {
				if item.expired() {
					delete(c.data, key)
					delete(c.access, key)
				}
			}
			c.mutex.Unlock()
		}
	}
}
