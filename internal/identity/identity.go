// Package identity provides the builder-time dedup machinery for antigens,
// sera, and tables: a cheap hash of each record's identity tuple (spec §3),
// plus a collision-aware table that maps a hash back to the one arena slot
// that actually owns that identity.
//
// This only exists during a build. The on-disk container never stores or
// looks up by these hashes -- disk lookups are the sorted binary searches in
// package query. The hash here plays exactly the role xxHash64 plays in the
// teacher package (github.com/arloliu/mebo/internal/hash): a fast key for an
// in-memory map, nothing more.
package identity

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// sep is a byte that cannot appear in any chart-derived field (location,
// isolation, lab id, etc. are all plain ASCII words), so it is safe as a
// tuple-component separator.
const sep = "\x00"

// Key joins an identity tuple's parts into one delimited string. Two records
// with the same logical identity produce byte-identical keys; two records
// that merely look similar after trimming table order do not.
func Key(parts ...string) string {
	return strings.Join(parts, sep)
}

// Hash returns the xxHash64 of a Key string, used as the map key in the
// builder's dedup tables.
func Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Table deduplicates values of type T by their identity Key, resolving
// xxHash64 collisions (distinct key, same hash) by falling back to a slice
// bucket, the same defensive shape as the teacher's collision.Tracker: never
// silently merge two distinct identities, and never fail a build over a hash
// collision alone.
type Table[T any] struct {
	buckets map[uint64][]entry[T]
	order   []uint64 // insertion order of first-seen hashes, for deterministic iteration
}

type entry[T any] struct {
	key   string
	value T
}

// NewTable creates an empty dedup table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{buckets: make(map[uint64][]entry[T])}
}

// Get returns the existing value for key, if any.
func (t *Table[T]) Get(key string) (T, bool) {
	var zero T
	h := Hash(key)
	for _, e := range t.buckets[h] {
		if e.key == key {
			return e.value, true
		}
	}

	return zero, false
}

// Put inserts value under key, which must not already exist (use Get first).
func (t *Table[T]) Put(key string, value T) {
	h := Hash(key)
	if _, ok := t.buckets[h]; !ok {
		t.order = append(t.order, h)
	}
	t.buckets[h] = append(t.buckets[h], entry[T]{key: key, value: value})
}

// Replace overwrites the value stored for an existing key.
func (t *Table[T]) Replace(key string, value T) {
	h := Hash(key)
	for i, e := range t.buckets[h] {
		if e.key == key {
			t.buckets[h][i].value = value
			return
		}
	}
	t.Put(key, value)
}

// Len returns the number of distinct identities stored.
func (t *Table[T]) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}

	return n
}

// Values returns all stored values in first-insertion order. Callers sort
// this slice themselves (by the identity tuple's own ordering, per spec §3);
// this order only guarantees determinism prior to that sort.
func (t *Table[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for _, h := range t.order {
		for _, e := range t.buckets[h] {
			out = append(out, e.value)
		}
	}

	return out
}
