package smolvec

// Slice returns the live elements as a slice whose length and capacity are
// both Len(). Writes through it update the container. The view is valid
// only until the next call that can grow, free or transfer the storage.
func (v *SmolVec[T]) Slice() []T {
	return v.data.slots()[:v.len:v.len]
}

// At returns the element at index i. It panics with an *IndexError if i is
// out of range.
func (v *SmolVec[T]) At(i int) T {
	checkIndex(i, v.len)
	return v.data.slots()[i]
}

// Set replaces the element at index i. It panics with an *IndexError if i
// is out of range.
func (v *SmolVec[T]) Set(i int, value T) {
	checkIndex(i, v.len)
	v.data.slots()[i] = value
}

// Last returns the last element without removing it.
func (v *SmolVec[T]) Last() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	return v.data.slots()[v.len-1], true
}
