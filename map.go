package vecmap

import (
	"fmt"
	"iter"
	"strings"
)

// VecMap is a map backed by two parallel slices, one for keys and one for
// values. Lookups are a linear scan over the keys, which for small maps
// (a few hundred entries or less) beats hashing on branch prediction and
// cache locality. Keys only need to support equality.
//
// Most operations are O(n). Removal relocates the last entry into the freed
// slot, so the storage order isn't stable, and no pointer obtained from the
// map survives an insert or a remove.
//
// VecMap is not safe for concurrent use. Use New or NewFunc to create one,
// the zero value isn't ready for use.
type VecMap[K any, V any] struct {
	table[K, V]
}

// Entry is a single key-value pair.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Returns a new map comparing keys with ==.
func New[K comparable, V any](opts ...Option[K, V]) *VecMap[K, V] {
	return NewFunc[K, V](equalComparable[K], opts...)
}

// Returns a new map comparing keys with equal. Use it for key types without
// ==, like slices, or for a custom notion of equality.
func NewFunc[K any, V any](equal EqualFunc[K], opts ...Option[K, V]) *VecMap[K, V] {
	if equal == nil {
		panic("vecmap: nil EqualFunc")
	}

	var m VecMap[K, V]
	m.init(equal, opts...)

	return &m
}

func equalComparable[K comparable](a, b K) bool {
	return a == b
}

// FromEntries builds a map from a list of pairs. When a key repeats, the
// later value wins, the same as calling Insert for each entry in order.
func FromEntries[K comparable, V any](entries []Entry[K, V], opts ...Option[K, V]) *VecMap[K, V] {
	return FromEntriesFunc[K, V](equalComparable[K], entries, opts...)
}

// FromEntriesFunc is FromEntries with a custom key equality.
func FromEntriesFunc[K any, V any](equal EqualFunc[K], entries []Entry[K, V], opts ...Option[K, V]) *VecMap[K, V] {
	m := NewFunc[K, V](equal, append([]Option[K, V]{WithCapacity[K, V](len(entries))}, opts...)...)
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}

	m.checkUnique("FromEntries")

	return m
}

// Collect builds a map from a sequence of pairs, later duplicates winning.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *VecMap[K, V] {
	m := New[K, V]()
	m.Extend(seq)

	return m
}

func (m *VecMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *VecMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Cap returns how many entries fit before either slice reallocates.
func (m *VecMap[K, V]) Cap() int {
	return m.capacity()
}

// Reserve makes room for at least n more entries in both slices.
func (m *VecMap[K, V]) Reserve(n int) {
	m.reserve(n)
}

// ShrinkToFit reallocates both slices down to the current length.
func (m *VecMap[K, V]) ShrinkToFit() {
	m.shrink()
}

// Clear removes every entry but keeps the allocated capacity.
func (m *VecMap[K, V]) Clear() {
	m.reset()
}

// Get returns the value stored for key.
func (m *VecMap[K, V]) Get(key K) (V, bool) {
	if i := m.find(key); i >= 0 {
		return m.values[i], true
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key. The pointer is only
// valid until the next insert or remove.
func (m *VecMap[K, V]) GetMut(key K) (*V, bool) {
	if i := m.find(key); i >= 0 {
		return &m.values[i], true
	}

	return nil, false
}

// GetPair returns the stored key along with its value. With a custom
// EqualFunc the stored key may differ from the one passed in.
func (m *VecMap[K, V]) GetPair(key K) (K, V, bool) {
	if i := m.find(key); i >= 0 {
		return m.keys[i], m.values[i], true
	}

	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

func (m *VecMap[K, V]) ContainsKey(key K) bool {
	return m.find(key) >= 0
}

// Insert stores value under key. If the key was present its previous value
// is returned with true, otherwise the entry is appended.
// Growing may reallocate, invalidating pointers from GetMut and friends.
func (m *VecMap[K, V]) Insert(key K, value V) (V, bool) {
	i := m.find(key)
	old, replaced := m.insertAt(i, key, value)
	m.checkInsert("Insert", i, key)

	return old, replaced
}

// Extend inserts every pair of seq in order.
func (m *VecMap[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Remove deletes key and returns its value. The last entry is moved into
// the freed slot, the entries in between stay where they are.
func (m *VecMap[K, V]) Remove(key K) (V, bool) {
	_, v, ok := m.RemoveEntry(key)
	return v, ok
}

// RemoveEntry is Remove that also hands back the stored key.
func (m *VecMap[K, V]) RemoveEntry(key K) (K, V, bool) {
	i := m.find(key)
	if i < 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	m.checkRemove("Remove", i, key)
	k, v := m.swapRemove(i)
	m.checkLen("Remove")

	return k, v, true
}

// Retain removes every entry for which keep returns false. Removal is
// swap-based, so survivors may be reordered.
func (m *VecMap[K, V]) Retain(keep func(K, V) bool) {
	for i := 0; i < len(m.keys); {
		if keep(m.keys[i], m.values[i]) {
			i++
			continue
		}

		// The relocated last entry lands on i and is checked next round.
		m.swapRemove(i)
	}

	m.checkLen("Retain")
}

// Drain empties the map and returns its former entries in storage order.
// The map gives up its backing arrays to the sequence, so it is empty as
// soon as Drain returns, whether or not the sequence is consumed.
func (m *VecMap[K, V]) Drain() iter.Seq2[K, V] {
	keys, values := m.keys, m.values
	m.keys, m.values = nil, nil

	return func(yield func(K, V) bool) {
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}

// Entries copies the map out as a slice of pairs in storage order.
func (m *VecMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(m.keys))
	for i := range m.keys {
		entries[i] = Entry[K, V]{Key: m.keys[i], Value: m.values[i]}
	}

	return entries
}

// Clone returns a copy with its own backing arrays. Keys and values are
// copied shallowly.
func (m *VecMap[K, V]) Clone() *VecMap[K, V] {
	c := &VecMap[K, V]{}
	c.equal = m.equal
	c.keys = append(make([]K, 0, len(m.keys)), m.keys...)
	c.values = append(make([]V, 0, len(m.values)), m.values...)

	return c
}

// EqualFunc reports whether both maps hold the same set of entries,
// regardless of order. Keys are matched with each map's own EqualFunc and
// values with eq.
//
// Identical layouts are accepted in one pass; permutations of each other
// are the worst case at O(n^2).
func (m *VecMap[K, V]) EqualFunc(other *VecMap[K, V], eq func(a, b V) bool) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}

	same := true
	for i := range m.keys {
		if !m.equal(m.keys[i], other.keys[i]) || !eq(m.values[i], other.values[i]) {
			same = false
			break
		}
	}

	if same {
		return true
	}

	for i := range m.keys {
		j := other.find(m.keys[i])
		if j < 0 || !eq(m.values[i], other.values[j]) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold the same entries, in any order.
func Equal[K any, V comparable](a, b *VecMap[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// Validate checks the map invariants from scratch: equal slice lengths and
// unique keys. It's O(n^2), meant for after using an unchecked accessor.
func (m *VecMap[K, V]) Validate() error {
	return m.validate()
}

func (m *VecMap[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("vecmap[")
	for i := range m.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", m.keys[i], m.values[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
