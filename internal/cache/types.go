package cache

import (
	"context"
)

// CacheKind is used to separate key spaces and tuning.
type CacheKind uint8

const (
	CacheKindUnknown CacheKind = iota
	CacheKindBlob              // front-coded list blob store blocks
)

// CacheKey must be stable across processes. Blob caching identifies
// entries by (Path, Offset); SegmentID is kept as a free numeric
// discriminator for callers that shard by something other than path.
type CacheKey struct {
	Kind      CacheKind
	SegmentID uint64
	// Offset is a logical block identifier (byte offset / block index).
	Offset uint64
	// Path identifies the source blob (e.g. filename).
	Path string
}

// BlockCache is a byte-oriented cache for immutable blocks.
// Returned slices must be treated as read-only.
type BlockCache interface {
	// Get returns a cached block. ok=false if missing.
	Get(ctx context.Context, key CacheKey) (b []byte, ok bool)
	// Set caches a block. Implementations may copy or retain; caller must treat b as immutable.
	Set(ctx context.Context, key CacheKey, b []byte)
	// Invalidate removes entries matching the predicate.
	Invalidate(predicate func(key CacheKey) bool)
	// Close releases any resources (e.g. background workers).
	Close() error
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}

// AdmissionPolicy decides whether a value should be cached.
// Start simple (e.g., “cache on second hit” or size-based).
type AdmissionPolicy interface {
	Admit(key CacheKey, sizeBytes int) bool
}
