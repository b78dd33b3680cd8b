// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry, and ByteStore, a byte-slice adapter over it.
//
// The cache evicts the least recently used item when it reaches capacity.
// With WithTTL, entries also expire a fixed duration after they were last
// written; expired entries are dropped lazily on Get and purged before any
// live entry is evicted.
//
// # Usage
//
//	c := cache.NewLRUCache[string, []byte](256, cache.WithTTL(24*time.Hour))
//	c.Put("qr:https://example.com/ar:512", png)
//	if data, ok := c.Get("qr:https://example.com/ar:512"); ok {
//		// serve data
//	}
//
// ByteStore exposes the same context-aware Get/Set/Delete methods as the
// Redis-backed cache, so callers can swap one for the other:
//
//	store := cache.NewByteStore(256, cache.WithTTL(time.Hour))
//	if err := store.Set(ctx, key, png); err != nil {
//		return err
//	}
//
// # Resource Cleanup
//
// SetEvictCallback registers a function called for every entry leaving the
// cache through eviction, expiry, Remove or Clear.
//
// # Performance Characteristics
//
// Get, Put and Remove are O(1) on average. When a TTL is set and the cache is
// over capacity, Put scans the list once to purge expired entries.
package cache
