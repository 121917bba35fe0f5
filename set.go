package vecmap

import (
	"fmt"
	"iter"
	"strings"
)

// VecSet is a set-like data structure built on VecMap with empty values.
// It shares the map's trade-offs: linear scans, equality-only elements,
// and an order that changes on removal.
type VecSet[T any] struct {
	m VecMap[T, struct{}]
}

// Returns a new set comparing elements with ==, with room for capacity
// elements.
func NewSet[T comparable](capacity int) *VecSet[T] {
	return NewSetFunc[T](equalComparable[T], capacity)
}

// Returns a new set comparing elements with equal.
func NewSetFunc[T any](equal EqualFunc[T], capacity int) *VecSet[T] {
	if equal == nil {
		panic("vecmap: nil EqualFunc")
	}

	var s VecSet[T]
	s.m.init(equal, WithCapacity[T, struct{}](capacity))

	return &s
}

// SetFromSlice builds a set from items, dropping repeats.
func SetFromSlice[T comparable](items []T) *VecSet[T] {
	s := NewSet[T](len(items))
	for _, v := range items {
		s.Insert(v)
	}

	return s
}

func (s *VecSet[T]) Len() int { return s.m.Len() }

func (s *VecSet[T]) IsEmpty() bool { return s.m.IsEmpty() }

func (s *VecSet[T]) Cap() int { return s.m.Cap() }

func (s *VecSet[T]) Reserve(n int) { s.m.Reserve(n) }

func (s *VecSet[T]) ShrinkToFit() { s.m.ShrinkToFit() }

func (s *VecSet[T]) Clear() { s.m.Clear() }

// Puts a value in the set. Returns whether it was new.
func (s *VecSet[T]) Insert(v T) bool {
	_, replaced := s.m.Insert(v, struct{}{})
	return !replaced
}

// Removes a value from the set. Returns whether it was present.
func (s *VecSet[T]) Remove(v T) bool {
	_, ok := s.m.Remove(v)
	return ok
}

func (s *VecSet[T]) Contains(v T) bool {
	return s.m.ContainsKey(v)
}

// Retain keeps only the elements for which keep returns true.
func (s *VecSet[T]) Retain(keep func(T) bool) {
	s.m.Retain(func(v T, _ struct{}) bool { return keep(v) })
}

// Drain empties the set and returns its former elements.
func (s *VecSet[T]) Drain() iter.Seq[T] {
	return keysOf(s.m.Drain())
}

// All returns the elements in storage order.
func (s *VecSet[T]) All() iter.Seq[T] {
	return s.m.Keys()
}

func (s *VecSet[T]) Clone() *VecSet[T] {
	return &VecSet[T]{m: *s.m.Clone()}
}

// Difference yields the elements of s that are not in other.
func (s *VecSet[T]) Difference(other *VecSet[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.All() {
			if !other.Contains(v) && !yield(v) {
				return
			}
		}
	}
}

// SymmetricDifference yields the elements in exactly one of the two sets:
// first those only in s, then those only in other.
func (s *VecSet[T]) SymmetricDifference(other *VecSet[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.Difference(other) {
			if !yield(v) {
				return
			}
		}

		for v := range other.Difference(s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Intersection yields the elements of s that are also in other.
func (s *VecSet[T]) Intersection(other *VecSet[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.All() {
			if other.Contains(v) && !yield(v) {
				return
			}
		}
	}
}

// Union yields every element of s, then the elements of other not in s.
func (s *VecSet[T]) Union(other *VecSet[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.All() {
			if !yield(v) {
				return
			}
		}

		for v := range other.Difference(s) {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *VecSet[T]) IsDisjoint(other *VecSet[T]) bool {
	for range s.Intersection(other) {
		return false
	}

	return true
}

func (s *VecSet[T]) IsSubset(other *VecSet[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

func (s *VecSet[T]) IsSuperset(other *VecSet[T]) bool {
	return other.IsSubset(s)
}

// Equal reports whether both sets hold the same elements, in any order.
func (s *VecSet[T]) Equal(other *VecSet[T]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

func (s *VecSet[T]) String() string {
	var sb strings.Builder

	sb.WriteString("vecset[")
	for i, v := range s.m.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}

func keysOf[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
