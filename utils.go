package vecmap

import "unsafe"

// Estimates capacity (number of entries) from the given memory size in bytes.
// An entry costs one K in the key array plus one V in the value array.
// Returns 0 when both K and V are zero-sized.
func CapacityFromSize[K any, V any](size uintptr) int {
	var (
		k K
		v V
	)

	sizeOfEntry := unsafe.Sizeof(k) + unsafe.Sizeof(v)
	if sizeOfEntry == 0 {
		return 0
	}

	return int(size / sizeOfEntry)
}
