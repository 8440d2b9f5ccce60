package smolvec

import "github.com/simplysabir/smolvec/internal/alloc"

// AllocStats is a snapshot of the process-wide heap buffer counters shared
// by all containers.
type AllocStats = alloc.Stats

// ReadAllocStats returns the current heap buffer counters. Pushing up to
// InlineCapacity elements into a fresh container never changes them.
func ReadAllocStats() AllocStats {
	return alloc.Snapshot()
}
