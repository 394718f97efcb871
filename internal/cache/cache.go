// Package cache memoizes calculator responses keyed by route and request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calc/internal/config"
	"github.com/iwvelando/finance-calc/pkg/constants"
)

// Cache stores encoded responses. Implementations must be safe for
// concurrent use. A failed lookup is reported as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives the cache key for a request on route from its canonical JSON
// encoding.
func Key(route string, request interface{}) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key for %s: %w", route, err)
	}
	return fmt.Sprintf("%s:%016x", route, xxhash.Sum64(payload)), nil
}

// New builds the cache described by cfg. A disabled cache is a Nop.
func New(cfg config.CacheConfig, logger *zap.Logger) (Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		return Nop{}, nil
	}

	switch cfg.Backend {
	case constants.CacheBackendMemory, "":
		return NewMemory(cfg.MaxEntries, cfg.TTL), nil
	case constants.CacheBackendRedis:
		return NewRedis(cfg.Redis, cfg.TTL, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

// Nop never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set discards value.
func (Nop) Set(context.Context, string, []byte) error { return nil }
