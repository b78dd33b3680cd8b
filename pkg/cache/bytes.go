package cache

import "context"

// ByteStore adapts an LRUCache of byte slices to the context-aware
// Get/Set shape shared with the Redis-backed cache.
type ByteStore struct {
	lru *LRUCache[string, []byte]
}

// NewByteStore returns an in-process byte cache holding up to capacity entries.
func NewByteStore(capacity int, opts ...Option) *ByteStore {
	return &ByteStore{lru: NewLRUCache[string, []byte](capacity, opts...)}
}

// Get returns a copy of the cached value.
func (s *ByteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of val under key.
func (s *ByteStore) Set(ctx context.Context, key string, val []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lru.Put(key, append([]byte(nil), val...))
	return nil
}

// Delete drops key.
func (s *ByteStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}
