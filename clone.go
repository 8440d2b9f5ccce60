package smolvec

// Clone returns an independent container with the same elements. Elements
// are copied by assignment; use CloneFunc when T holds references that must
// not be shared.
func (v *SmolVec[T]) Clone() *SmolVec[T] {
	c := WithCapacity[T](v.len)
	c.Append(v.Slice()...)
	return c
}

// CloneFunc returns an independent container whose elements are fn applied
// to each element of v, in order.
func (v *SmolVec[T]) CloneFunc(fn func(T) T) *SmolVec[T] {
	c := WithCapacity[T](v.len)
	for _, value := range v.Slice() {
		c.Push(fn(value))
	}
	return c
}
