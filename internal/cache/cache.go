// Package cache provides the small key/value store backing the short-TTL
// category read cache. Entries expire on their own after the configured max
// age and are invalidated explicitly on every category mutation.
package cache

import "time"

// Store is a byte-value cache with per-entry expiry.
type Store interface {
	// Get returns the cached value and whether a live entry was found.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte, ttl time.Duration) error
	Invalidate(key string) error
}
