package alloc

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/simplysabir/smolvec/internal/conv"
)

// ErrCapacityOverflow is returned when a buffer of the requested slot count
// cannot be represented.
var ErrCapacityOverflow = errors.New("alloc: capacity overflow")

// maxBytes caps a single buffer below the runtime's own allocation limit.
const maxBytes = (1<<47 - 1) & math.MaxInt

// SizeOf returns the size in bytes of one slot of T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxCapacity returns the largest slot count Make accepts for T.
func MaxCapacity[T any]() int {
	size := SizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return maxBytes / size
}

// Make allocates a buffer of exactly n slots. All slots hold the zero value.
func Make[T any](n int) ([]T, error) {
	if n < 0 || n > MaxCapacity[T]() {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrCapacityOverflow, n, SizeOf[T]())
	}
	bytes, err := conv.MulInt(n, SizeOf[T]())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}

	buf := make([]T, n)
	stats.allocations.Add(1)
	stats.bytesAllocated.Add(uint64(bytes))
	return buf, nil
}

// Relocate moves src into the front of dst and zeroes src. It returns the
// number of slots moved. The source slots are dead afterwards: they no
// longer reference the moved values.
func Relocate[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	stats.relocations.Add(1)
	stats.elementsRelocated.Add(uint64(n))
	return n
}

// Release records that the owner of buf no longer holds it. The caller
// must drop every reference to buf; the memory is reclaimed by the GC.
func Release[T any](buf []T) {
	if cap(buf) == 0 {
		return
	}
	stats.releases.Add(1)
	stats.bytesReleased.Add(uint64(cap(buf) * SizeOf[T]()))
}
