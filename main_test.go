package vecmap

import "strconv"

// countingEqual wraps == and counts every key comparison made through it.
func countingEqual[K comparable](calls *int) EqualFunc[K] {
	return func(a, b K) bool {
		*calls++
		return a == b
	}
}

func genKeys[K comparable](start, end int) []K {
	keys := make([]K, 0, end-start)

	for i := start; i < end; i++ {
		var k any
		switch any(*new(K)).(type) {
		case uint32:
			k = uint32(i)
		case uint64:
			k = uint64(i)
		case int:
			k = i
		case string:
			k = strconv.Itoa(i)
		default:
			panic("not reached")
		}

		keys = append(keys, k.(K))
	}

	return keys
}
