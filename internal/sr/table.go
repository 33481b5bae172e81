package sr

import (
	"fmt"

	"fortio.org/safecast"
)

// table is an append-only hash-consing store. Structurally equal values map
// to a single shared Token for the lifetime of the owning Context; nothing
// is ever removed. Lookup is amortized O(1) through a hash index with
// collision buckets, since stored values may contain slices and cannot be
// map keys themselves.
type table[T any] struct {
	items []T
	index map[uint64][]uint32
	hash  func(T) uint64
	equal func(a, b T) bool
}

func newTable[T any](hash func(T) uint64, equal func(a, b T) bool) *table[T] {
	return &table[T]{
		index: make(map[uint64][]uint32, 64),
		hash:  hash,
		equal: equal,
	}
}

// fetchOrAppend returns the existing Token when a structurally equal value
// is already stored, otherwise appends the value and returns a fresh one.
func (t *table[T]) fetchOrAppend(v T) Token[T] {
	h := t.hash(v)
	for _, idx := range t.index[h] {
		if t.equal(t.items[idx], v) {
			return Token[T]{index: idx}
		}
	}
	idx, err := safecast.Conv[uint32](len(t.items))
	if err != nil {
		panic(fmt.Errorf("len(items) overflow: %w", err))
	}
	t.items = append(t.items, v)
	t.index[h] = append(t.index[h], idx)
	return Token[T]{index: idx}
}

// lookup returns the stored value for a token minted by this table.
func (t *table[T]) lookup(tok Token[T]) (T, bool) {
	if int(tok.index) >= len(t.items) {
		var zero T
		return zero, false
	}
	return t.items[tok.index], true
}

func (t *table[T]) len() int {
	return len(t.items)
}
