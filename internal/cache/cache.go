// Package cache provides the short-lived read-through cache backing the
// public job listing. Entries expire by TTL only; there is no invalidation
// on writes, which bounds staleness to the configured window.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a minimal TTL key-value store. Values are opaque bytes; callers
// handle serialization.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ListingKey builds a deterministic cache key from a normalized filter set.
// The search term is hashed, and the type list is sorted before joining, so
// equal filter sets always map to the same key.
func ListingKey(search, sortBy string, types []string) string {
	key := "job_postings_public"

	if search != "" {
		sum := md5.Sum([]byte(search))
		key += "_search_" + hex.EncodeToString(sum[:])
	}
	if sortBy != "" {
		key += "_sort_" + sortBy
	}
	if len(types) > 0 {
		sorted := make([]string, len(types))
		copy(sorted, types)
		sort.Strings(sorted)
		key += "_types_" + strings.Join(sorted, "_")
	}
	return key
}
