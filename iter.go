package vecmap

import "iter"

// The sequences below walk the map in storage order: insertion order, as
// reshuffled by removals. Each range over them starts from the beginning.
// Inserting into or removing from the map while a sequence or an Iterator
// is in use is not supported; what the iteration observes is unspecified.

// All returns a sequence of the map's entries.
func (m *VecMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// AllMut is All with a pointer to each value, for updating values in place.
func (m *VecMap[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], &m.values[i]) {
				return
			}
		}
	}
}

func (m *VecMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *VecMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *VecMap[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range m.values {
			if !yield(&m.values[i]) {
				return
			}
		}
	}
}

// Iterator is a pull-style cursor over a map's entries.
//
//	it := m.Iter()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//
// Key and Value are only valid after Next has returned true.
type Iterator[K any, V any] interface {
	Next() bool
	Key() K
	Value() V
	// Reset rewinds the cursor to before the first entry.
	Reset()
}

// Iter returns a cursor behind the Iterator interface. Every call goes
// through dynamic dispatch; use RawIter in hot loops.
func (m *VecMap[K, V]) Iter() Iterator[K, V] {
	it := m.RawIter()
	return &it
}

// RawIterator is the concrete cursor behind Iter. Held as a value it needs
// no allocation and its methods can be inlined.
type RawIterator[K any, V any] struct {
	keys   []K
	values []V
	pos    int
}

// RawIter returns a cursor over the map's slices as they are now.
func (m *VecMap[K, V]) RawIter() RawIterator[K, V] {
	return RawIterator[K, V]{
		keys:   m.keys,
		values: m.values,
		pos:    -1,
	}
}

func (it *RawIterator[K, V]) Next() bool {
	if it.pos+1 >= len(it.keys) {
		it.pos = len(it.keys)
		return false
	}

	it.pos++
	return true
}

func (it *RawIterator[K, V]) Key() K {
	return it.keys[it.pos]
}

func (it *RawIterator[K, V]) Value() V {
	return it.values[it.pos]
}

// Index is the storage position of the current entry.
func (it *RawIterator[K, V]) Index() int {
	return it.pos
}

func (it *RawIterator[K, V]) Reset() {
	it.pos = -1
}
