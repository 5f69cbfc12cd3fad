// Package cache stores rendered images keyed by their input.
//
// In-process rendering re-lays out the whole graph on every call. A [Cache]
// keyed by [RenderKey] lets repeated renders of an unchanged .gv file with the
// same options reuse the previous image.
//
// Two implementations are provided: [FileCache] for the CLI (one JSON file per
// entry under the XDG cache directory) and [NullCache] when caching is off.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// hashKey generates a cache key of the form prefix:hash(parts...).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// RenderKey identifies a rendered image by the DOT text and every setting that
// changes the output.
func RenderKey(dot []byte, engine, format string, overlap, splines bool) string {
	return hashKey("render", Hash(dot), engine, format, overlap, splines)
}
