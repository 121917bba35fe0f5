//go:build vecmap_contracts

package vecmap

// ContractsEnabled reports whether the build carries the vecmap_contracts tag.
const ContractsEnabled = true

// checkInsert runs after insertAt. i is the index find returned before the
// insert; the hook finishes that scan instead of starting a new one.
func (t *table[K, V]) checkInsert(op string, i int, key K) {
	t.checkLen(op)

	if i < 0 {
		last := len(t.keys) - 1
		if last < 0 || !t.equal(t.keys[last], key) {
			violate(op, "appended key is not at the tail", last, len(t.keys))
		}

		return
	}

	if i >= len(t.keys) {
		violate(op, "search index out of range", i, len(t.keys))
	}

	if !t.equal(t.keys[i], key) {
		violate(op, "replaced slot holds a different key", i, len(t.keys))
	}

	t.checkTail(op, i, key)
}

// checkRemove runs before swapRemove with the index find returned.
func (t *table[K, V]) checkRemove(op string, i int, key K) {
	t.checkLen(op)

	if i < 0 || i >= len(t.keys) {
		violate(op, "search index out of range", i, len(t.keys))
	}

	if !t.equal(t.keys[i], key) {
		violate(op, "removed slot holds a different key", i, len(t.keys))
	}

	t.checkTail(op, i, key)
}

// checkFresh guards the unchecked push. The push doesn't search, so this is
// the one hook that scans on its own.
func (t *table[K, V]) checkFresh(op string, key K) {
	if i := t.find(key); i >= 0 {
		violate(op, "key already present", i, len(t.keys))
	}
}

func (t *table[K, V]) checkLen(op string) {
	if len(t.keys) != len(t.values) {
		violate(op, "keys and values length mismatch", len(t.values), len(t.keys))
	}
}

func (t *table[K, V]) checkUnique(op string) {
	if err := t.validate(); err != nil {
		violate(op, err.Error(), -1, len(t.keys))
	}
}

// checkTail scans the keys after the first match at i. Any further match
// means uniqueness was broken through an unchecked accessor.
func (t *table[K, V]) checkTail(op string, i int, key K) {
	for j := i + 1; j < len(t.keys); j++ {
		if t.equal(t.keys[j], key) {
			violate(op, "duplicate key", j, len(t.keys))
		}
	}
}
