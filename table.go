package vecmap

import "slices"

// EqualFunc reports whether two keys are equal.
type EqualFunc[K any] func(a, b K) bool

// table stores entries in two parallel slices. The entry at index i is
// (keys[i], values[i]). Keys are packed together, so a lookup scan only
// touches key memory no matter how large V is.
type table[K any, V any] struct {
	keys   []K
	values []V

	equal EqualFunc[K]
}

type Option[K any, V any] func(t *table[K, V])

// Preallocates room for n entries in both slices.
func WithCapacity[K any, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		t.reserve(n)
	}
}

func (t *table[K, V]) init(equal EqualFunc[K], opts ...Option[K, V]) {
	t.equal = equal

	for _, opt := range opts {
		opt(t)
	}
}

// find returns the index of the first key equal to key, or -1.
func (t *table[K, V]) find(key K) int {
	for i := range t.keys {
		if t.equal(t.keys[i], key) {
			return i
		}
	}

	return -1
}

// insertAt stores the entry given the result of a prior find.
// A hit replaces the value in place, a miss appends to both slices.
func (t *table[K, V]) insertAt(i int, key K, value V) (V, bool) {
	if i >= 0 {
		old := t.values[i]
		t.values[i] = value

		return old, true
	}

	t.keys = append(t.keys, key)
	t.values = append(t.values, value)

	var zero V
	return zero, false
}

// swapRemove moves the last entry into slot i and shrinks both slices by
// one. The vacated tail slot is zeroed so it doesn't pin memory.
func (t *table[K, V]) swapRemove(i int) (K, V) {
	last := len(t.keys) - 1
	key, value := t.keys[i], t.values[i]

	t.keys[i] = t.keys[last]
	t.values[i] = t.values[last]

	clear(t.keys[last:])
	clear(t.values[last:])

	t.keys = t.keys[:last]
	t.values = t.values[:last]

	return key, value
}

func (t *table[K, V]) reserve(n int) {
	if n <= 0 {
		return
	}

	t.keys = slices.Grow(t.keys, n)
	t.values = slices.Grow(t.values, n)
}

func (t *table[K, V]) shrink() {
	t.keys = slices.Clip(slices.Clone(t.keys))
	t.values = slices.Clip(slices.Clone(t.values))
}

func (t *table[K, V]) reset() {
	clear(t.keys)
	clear(t.values)

	t.keys = t.keys[:0]
	t.values = t.values[:0]
}

// capacity is the number of entries the table holds before either slice
// has to grow.
func (t *table[K, V]) capacity() int {
	return min(cap(t.keys), cap(t.values))
}
