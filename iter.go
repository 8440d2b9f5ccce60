package smolvec

import (
	"iter"
	"slices"
)

// All returns an iterator over index-value pairs in order.
func (v *SmolVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.Slice() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *SmolVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Slice() {
			if !yield(value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *SmolVec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Drain transfers the elements out of v immediately, as IntoSlice does,
// and returns an iterator over them. v is empty once Drain returns.
func (v *SmolVec[T]) Drain() iter.Seq[T] {
	return slices.Values(v.IntoSlice())
}
