package smolvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. Floating point NaNs are not considered equal.
func Equal[T comparable](a, b *SmolVec[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *SmolVec[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b and +1 if a > b. A strict prefix orders first.
func Compare[T cmp.Ordered](a, b *SmolVec[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *SmolVec[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}
