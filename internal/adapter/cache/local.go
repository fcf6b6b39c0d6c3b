package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && e.expiresAt.Before(now)
}

// LocalCache implements ports.Cache with an in-memory map. Call
// durations are short, so an in-process TTL store is sufficient for
// notification deduplication when no Redis is configured.
type LocalCache struct {
	mu     sync.Mutex
	data   map[string]entry
	log    *zap.Logger
	stopCh chan struct{}
}

var _ ports.Cache = (*LocalCache)(nil)

// NewLocalCache creates an in-memory cache with periodic cleanup of
// expired entries.
func NewLocalCache(cleanupInterval time.Duration, log *zap.Logger) *LocalCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &LocalCache{
		data:   make(map[string]entry),
		log:    log,
		stopCh: make(chan struct{}),
	}
	go c.cleanupLoop(cleanupInterval)
	log.Info("Local in-memory dedup cache initialized",
		zap.Duration("cleanup_interval", cleanupInterval),
	)
	return c
}

func (c *LocalCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok || e.expired(time.Now()) {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return e.value, nil
}

func (c *LocalCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = newEntry(value, expiration)
	return nil
}

func (c *LocalCache) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.data[key]; ok && !e.expired(time.Now()) {
		return false, nil
	}
	c.data[key] = newEntry(value, expiration)
	return true, nil
}

func (c *LocalCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *LocalCache) Ping() error { return nil }

// Close stops the cleanup goroutine.
func (c *LocalCache) Close() error {
	close(c.stopCh)
	return nil
}

func newEntry(value interface{}, expiration time.Duration) entry {
	e := entry{value: fmt.Sprintf("%v", value)}
	if expiration > 0 {
		e.expiresAt = time.Now().Add(expiration)
	}
	return e
}

func (c *LocalCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.data {
				if e.expired(now) {
					delete(c.data, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}
