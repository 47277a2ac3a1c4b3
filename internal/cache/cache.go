// Package cache memoizes encoded responses keyed by request fingerprint.
//
// A Cache holds at most MaxEntries values, evicting the least recently used
// one. Values are stored compressed with the configured codec and returned
// decompressed, so callers never see or share the stored bytes.
package cache

import (
	"container/list"
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/growthcast/compress"
	"github.com/arloliu/growthcast/format"
)

// DefaultMaxEntries is the capacity used when none is configured.
const DefaultMaxEntries = 1024

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// RawBytes and StoredBytes total the live entries before and after compression.
	RawBytes    int
	StoredBytes int
}

// Ratio returns StoredBytes/RawBytes.
func (s Stats) Ratio() float64 {
	return compress.Ratio(s.RawBytes, s.StoredBytes)
}

type entry struct {
	key    uint64
	value  []byte
	rawLen int
}

// Cache is a concurrency-safe LRU of compressed byte values.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	codec      compress.Codec
	ll         *list.List
	items      map[uint64]*list.Element
	stats      Stats
}

// New creates a cache.
//
// Parameters:
//   - maxEntries: Capacity; zero means DefaultMaxEntries
//   - compression: Codec applied to stored values
//
// Returns:
//   - *Cache: Empty cache
//   - error: Negative capacity or unsupported compression
func New(maxEntries int, compression format.CompressionType) (*Cache, error) {
	if maxEntries < 0 {
		return nil, fmt.Errorf("cache max entries must not be negative, got %d", maxEntries)
	}
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	codec, err := compress.New(compression)
	if err != nil {
		return nil, err
	}

	return &Cache{
		maxEntries: maxEntries,
		codec:      codec,
		ll:         list.New(),
		items:      make(map[uint64]*list.Element, maxEntries),
	}, nil
}

// Get returns a copy of the value stored under key.
//
// An entry that fails to decompress is dropped and reported as a miss
// together with the error.
func (c *Cache) Get(key uint64) ([]byte, bool, error) {
	c.mu.Lock()
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		c.mu.Unlock()

		return nil, false, nil
	}
	c.ll.MoveToFront(el)
	stored := el.Value.(*entry).value
	c.mu.Unlock()

	// Stored slices are never mutated after Put, so decompression runs unlocked.
	value, err := c.codec.Decompress(stored)
	if err != nil {
		c.mu.Lock()
		c.stats.Misses++
		if cur, ok := c.items[key]; ok && cur == el {
			c.removeElement(el)
		}
		c.mu.Unlock()

		return nil, false, fmt.Errorf("cache entry %016x: %w", key, err)
	}
	if len(value) > 0 && len(stored) > 0 && &value[0] == &stored[0] {
		value = append([]byte(nil), value...)
	}

	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()

	return value, true, nil
}

// Put stores a copy of value under key, replacing any previous value.
func (c *Cache) Put(key uint64, value []byte) error {
	if value == nil {
		return errors.New("cache value must not be nil")
	}

	stored, err := c.codec.Compress(value)
	if err != nil {
		return fmt.Errorf("cache entry %016x: %w", key, err)
	}
	if len(stored) > 0 && &stored[0] == &value[0] {
		stored = append([]byte(nil), stored...)
	}
	if stored == nil {
		stored = []byte{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
	el := c.ll.PushFront(&entry{key: key, value: stored, rawLen: len(value)})
	c.items[key] = el
	c.stats.RawBytes += len(value)
	c.stats.StoredBytes += len(stored)

	for c.ll.Len() > c.maxEntries {
		c.removeElement(c.ll.Back())
		c.stats.Evictions++
	}

	return nil
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ll.Len()
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = c.ll.Len()

	return s
}

// Purge drops every entry. Hit, miss and eviction counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	clear(c.items)
	c.stats.RawBytes, c.stats.StoredBytes = 0, 0
}

// removeElement must be called with c.mu held.
func (c *Cache) removeElement(el *list.Element) {
	e := c.ll.Remove(el).(*entry)
	delete(c.items, e.key)
	c.stats.RawBytes -= e.rawLen
	c.stats.StoredBytes -= len(e.value)
}
