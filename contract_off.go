//go:build !vecmap_contracts

package vecmap

// ContractsEnabled reports whether the build carries the vecmap_contracts tag.
const ContractsEnabled = false

// Without the vecmap_contracts tag every hook is empty and gets inlined away.

func (t *table[K, V]) checkInsert(op string, i int, key K) {}

func (t *table[K, V]) checkRemove(op string, i int, key K) {}

func (t *table[K, V]) checkFresh(op string, key K) {}

func (t *table[K, V]) checkLen(op string) {}

func (t *table[K, V]) checkUnique(op string) {}
