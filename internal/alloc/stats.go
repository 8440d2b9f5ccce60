package alloc

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Stats is a snapshot of the allocation counters.
//
// Semantics:
//   - Allocations/BytesAllocated: heap buffers handed out by Make
//   - Releases/BytesReleased: buffers given up by their owner (replaced on
//     growth, freed, or transferred out)
//   - Relocations/ElementsRelocated: bulk moves performed by Relocate
type Stats struct {
	Allocations       uint64
	BytesAllocated    uint64
	Releases          uint64
	BytesReleased     uint64
	Relocations       uint64
	ElementsRelocated uint64
}

// LiveBytes returns the bytes held by buffers that are still owned.
func (s Stats) LiveBytes() uint64 {
	return s.BytesAllocated - s.BytesReleased
}

// Sub returns the counter deltas s - prev.
func (s Stats) Sub(prev Stats) Stats {
	return Stats{
		Allocations:       s.Allocations - prev.Allocations,
		BytesAllocated:    s.BytesAllocated - prev.BytesAllocated,
		Releases:          s.Releases - prev.Releases,
		BytesReleased:     s.BytesReleased - prev.BytesReleased,
		Relocations:       s.Relocations - prev.Relocations,
		ElementsRelocated: s.ElementsRelocated - prev.ElementsRelocated,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats{allocs: %d, allocated: %.2f KB, releases: %d, live: %.2f KB, relocations: %d, moved: %d}",
		s.Allocations,
		float64(s.BytesAllocated)/1024,
		s.Releases,
		float64(s.LiveBytes())/1024,
		s.Relocations,
		s.ElementsRelocated,
	)
}

// Allocation and release counters are bumped by different code paths, so
// they live on separate cache lines.
var stats struct {
	allocations    atomic.Uint64
	bytesAllocated atomic.Uint64
	_              cpu.CacheLinePad

	releases      atomic.Uint64
	bytesReleased atomic.Uint64
	_             cpu.CacheLinePad

	relocations       atomic.Uint64
	elementsRelocated atomic.Uint64
}

// Snapshot returns the current counters.
func Snapshot() Stats {
	return Stats{
		Allocations:       stats.allocations.Load(),
		BytesAllocated:    stats.bytesAllocated.Load(),
		Releases:          stats.releases.Load(),
		BytesReleased:     stats.bytesReleased.Load(),
		Relocations:       stats.relocations.Load(),
		ElementsRelocated: stats.elementsRelocated.Load(),
	}
}
