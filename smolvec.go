package smolvec

import (
	"iter"

	"github.com/simplysabir/smolvec/internal/alloc"
)

// InlineCapacity is the number of elements stored inside the container
// value before it spills to a heap buffer.
const InlineCapacity = 16

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// SmolVec is a growable sequence that keeps up to InlineCapacity elements
// inline and moves them to a heap buffer once it outgrows that.
//
// The zero value is an empty container ready to use. A SmolVec must not be
// copied after first use: a copy of a spilled container would share its
// heap buffer. Use Clone to duplicate one.
//
// SmolVec is not safe for concurrent use.
type SmolVec[T any] struct {
	_ noCopy

	len  int
	data storage[T]
}

// New returns an empty container. It performs no heap allocation.
func New[T any]() *SmolVec[T] {
	return &SmolVec[T]{}
}

// WithCapacity returns an empty container able to hold n elements without
// growing. For n <= InlineCapacity it is identical to New; otherwise it
// allocates one heap buffer of exactly n slots.
func WithCapacity[T any](n int) *SmolVec[T] {
	v := &SmolVec[T]{}
	if n > InlineCapacity {
		v.grow(n, nil)
	}
	return v
}

// From returns a container holding every element produced by seq, in order.
func From[T any](seq iter.Seq[T]) *SmolVec[T] {
	v := New[T]()
	v.Extend(seq)
	return v
}

// Of returns a container holding values, in order.
func Of[T any](values ...T) *SmolVec[T] {
	v := WithCapacity[T](len(values))
	v.Append(values...)
	return v
}

// Len returns the number of elements.
func (v *SmolVec[T]) Len() int { return v.len }

// Cap returns the number of elements the container can hold without growing.
func (v *SmolVec[T]) Cap() int { return v.data.capacity() }

// IsEmpty reports whether the container holds no elements.
func (v *SmolVec[T]) IsEmpty() bool { return v.len == 0 }

// Spilled reports whether the elements live in a heap buffer. Once true it
// stays true until Free or IntoSlice.
func (v *SmolVec[T]) Spilled() bool { return v.data.spilled() }

// Push appends value, growing the storage if it is full.
func (v *SmolVec[T]) Push(value T) {
	v.reserveOne()
	v.data.slots()[v.len] = value
	v.len++
}

// Pop removes and returns the last element. The boolean is false if the
// container is empty.
func (v *SmolVec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	slots := v.data.slots()
	value := slots[v.len]
	slots[v.len] = zero
	return value, true
}

// Clear removes every element. The capacity is kept.
func (v *SmolVec[T]) Clear() {
	clear(v.data.slots()[:v.len])
	v.len = 0
}

// Extend appends every element produced by seq, in order. seq must not
// read from v.
func (v *SmolVec[T]) Extend(seq iter.Seq[T]) {
	for value := range seq {
		v.Push(value)
	}
}

// Append appends values, in order, growing at most once. values may be a
// view of the container itself.
func (v *SmolVec[T]) Append(values ...T) {
	if need := v.capacityFor(len(values)); need > 0 {
		v.grow(need, values)
	} else {
		copy(v.data.slots()[v.len:], values)
	}
	v.len += len(values)
}

// IntoSlice transfers the elements to a plain slice and leaves the
// container empty in its zero state.
//
// A spilled container hands over its heap buffer as is; an inline one
// copies its elements into a new slice of exactly Len() elements.
func (v *SmolVec[T]) IntoSlice() []T {
	var out []T
	if v.data.spilled() {
		out = v.data.heap[:v.len]
		alloc.Release(v.data.heap)
	} else {
		out = make([]T, v.len)
		copy(out, v.data.inline[:v.len])
		clear(v.data.inline[:v.len])
	}
	v.len = 0
	v.data.reset()
	return out
}

// Free drops every element and the heap buffer, returning the container to
// its zero state.
func (v *SmolVec[T]) Free() {
	v.Clear()
	if v.data.spilled() {
		alloc.Release(v.data.heap)
	}
	v.data.reset()
}
