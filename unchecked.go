package vecmap

// The accessors in this file bypass the uniqueness check the rest of the
// API maintains. After a caller makes two stored keys equal through any of
// them, every later operation on the map behaves in an unspecified way:
// lookups may return either entry and removals may leave the other behind.
// Validate re-checks the invariants; builds with the vecmap_contracts tag
// also catch duplicates on the next Insert or Remove of the affected key.

// InsertUnchecked appends the entry without searching for key first.
// The caller guarantees key is not already present.
func (m *VecMap[K, V]) InsertUnchecked(key K, value V) {
	m.checkFresh("InsertUnchecked", key)

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// KeyMutUnchecked returns a pointer to the key stored at position i, as
// seen through RawIterator.Index. The pointer dies with the next insert or
// remove. It panics if i is out of range.
func (m *VecMap[K, V]) KeyMutUnchecked(i int) *K {
	return &m.keys[i]
}

// SlicesUnchecked returns the live backing slices. Writing to values is
// safe, writing to keys is unchecked. Appending to either doesn't affect the
// map.
func (m *VecMap[K, V]) SlicesUnchecked() ([]K, []V) {
	return m.keys, m.values
}
