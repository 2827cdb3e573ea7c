// Package cache stores evaluation results keyed by operation and arguments.
// Memory keeps entries in process; Redis shares them between replicas.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. found is false on a miss or an
	// expired entry.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key for ttl. A non-positive ttl keeps the entry
	// until it is evicted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives a compact cache key from a namespace and a canonical payload:
// "<namespace>:<xxhash64 of payload in hex>".
func Key(namespace string, payload []byte) string {
	return namespace + ":" + strconv.FormatUint(xxhash.Sum64(payload), 16)
}
