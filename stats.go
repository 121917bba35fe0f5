package vecmap

import "unsafe"

type Stats struct {
	Size     int
	Capacity int

	// Bytes held by the backing arrays, counting unused capacity.
	// Memory referenced from inside K or V (strings, pointers) isn't counted.
	KeyBytes   uintptr
	ValueBytes uintptr
}

func (m *VecMap[K, V]) Stats() Stats {
	var (
		k K
		v V
	)

	return Stats{
		Size:       len(m.keys),
		Capacity:   m.capacity(),
		KeyBytes:   uintptr(cap(m.keys)) * unsafe.Sizeof(k),
		ValueBytes: uintptr(cap(m.values)) * unsafe.Sizeof(v),
	}
}
