package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/config"
)

// Cache is a bounded-TTL read cache. Entries may vanish at any time; callers
// must be able to recompute them from the store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Del(context.Context, string) error                        { return nil }

// New builds the cache selected by cfg.Cache.Backend.
func New(cfg *config.Config, clk clock.Clock) (Cache, error) {
	switch cfg.Cache.Backend {
	case "memory", "":
		return NewMemory(clk, cfg.Cache.MaxEntries), nil
	case "redis":
		rc := NewRedisCache(cfg)
		if err := rc.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rc, nil
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// GetJSON loads key into dst. Decode failures count as a miss.
func GetJSON(ctx context.Context, c Cache, key string, dst any) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		_ = c.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON stores v under key for ttl.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	return c.Set(ctx, key, raw, ttl)
}
