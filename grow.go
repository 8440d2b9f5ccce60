package smolvec

import (
	"math"

	"github.com/simplysabir/smolvec/internal/alloc"
	"github.com/simplysabir/smolvec/internal/conv"
)

// nextCapacity implements the doubling policy. A zero capacity jumps
// straight to InlineCapacity.
func nextCapacity(capacity int) int {
	if capacity == 0 {
		return InlineCapacity
	}
	if capacity > math.MaxInt/2 {
		panic(newCapacityError(capacity, alloc.ErrCapacityOverflow))
	}
	return capacity * 2
}

// reserveOne guarantees a free slot at index v.len.
func (v *SmolVec[T]) reserveOne() {
	if c := v.data.capacity(); v.len == c {
		v.grow(nextCapacity(c), nil)
	}
}

// capacityFor returns the capacity to grow to so that additional more
// elements fit, or 0 if they already do: twice the current capacity, or
// exactly Len()+additional if that is larger.
func (v *SmolVec[T]) capacityFor(additional int) int {
	c := v.data.capacity()
	if additional <= c-v.len {
		return 0
	}
	need, err := conv.AddInt(v.len, additional)
	if err != nil {
		panic(newCapacityError(additional, err))
	}
	if c <= alloc.MaxCapacity[T]()/2 && c*2 > need {
		need = c * 2
	}
	return need
}

// grow moves the live elements into a fresh heap buffer of newCap slots and
// makes it the active storage. tail, if any, is copied in after the live
// elements before the old slots are zeroed, so it may alias them; the
// caller accounts for it in v.len. The previous heap buffer, if any, is
// released after the move.
func (v *SmolVec[T]) grow(newCap int, tail []T) {
	buf, err := alloc.Make[T](newCap)
	if err != nil {
		panic(newCapacityError(newCap, err))
	}

	old := v.data.slots()
	copy(buf[v.len:], tail)
	alloc.Relocate(buf, old[:v.len])
	if v.data.spilled() {
		alloc.Release(old)
	}

	v.data.install(buf)
}

// Reserve ensures room for at least additional more elements without
// further growth. When the free slots are insufficient it grows once, to
// twice the current capacity or to exactly Len()+additional, whichever is
// larger. A non-positive additional is a no-op.
func (v *SmolVec[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	if need := v.capacityFor(additional); need > 0 {
		v.grow(need, nil)
	}
}
