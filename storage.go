package smolvec

// layout selects the active storage variant. The zero value is inline, so a
// zero SmolVec needs no initialization.
type layout uint8

const (
	layoutInline layout = iota
	layoutHeap
)

// storage holds either the inline block or a heap buffer; layout says which
// one is live. The heap buffer's length is its recorded capacity.
//
// Slots at index >= the owning container's length always hold the zero
// value of T. Only push and growth write them.
type storage[T any] struct {
	inline [InlineCapacity]T
	heap   []T
	layout layout
}

func (s *storage[T]) capacity() int {
	if s.layout == layoutHeap {
		return len(s.heap)
	}
	return InlineCapacity
}

// slots returns every slot of the active buffer, live or not.
func (s *storage[T]) slots() []T {
	if s.layout == layoutHeap {
		return s.heap
	}
	return s.inline[:]
}

func (s *storage[T]) spilled() bool {
	return s.layout == layoutHeap
}

// install makes buf the active heap buffer.
func (s *storage[T]) install(buf []T) {
	s.heap = buf
	s.layout = layoutHeap
}

// reset drops the heap buffer (if any) and switches back to the inline
// block. Callers must have zeroed the live slots or transferred them out.
func (s *storage[T]) reset() {
	s.heap = nil
	s.layout = layoutInline
}
