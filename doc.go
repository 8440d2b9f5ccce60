// Package smolvec provides a growable sequence that avoids heap allocation
// for small element counts.
//
// A SmolVec stores up to InlineCapacity elements inside the container value
// itself. The first push beyond that moves the elements to a heap buffer of
// twice the inline capacity; from then on the buffer doubles whenever it is
// full. Programs that build many short-lived, typically small sequences
// (argument lists, small batches) avoid allocator traffic in the common case
// and still get unbounded growth.
//
// # Quick Start
//
//	var args smolvec.SmolVec[string] // zero value is ready to use
//	args.Push("-v")
//	args.Push("--color")
//	last, ok := args.Pop()
//
//	v := smolvec.Of(3, 1, 2)
//	slices.Sort(v.Slice())           // the view is a plain slice
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Storage Model
//
// Exactly one of two layouts is active at a time:
//
//   - Inline: a fixed array of InlineCapacity slots embedded in the value
//   - Heap: a separately allocated buffer whose slot count is the capacity
//
// The transition is one way. Pop and Clear never release memory; Free and
// IntoSlice return the container to its zero state. Slots past Len always
// hold the zero value of T, so a container never keeps removed or moved
// elements reachable.
//
// # Ownership
//
// A SmolVec has a single owner and is not safe for concurrent use. It must
// not be copied after first use (go vet reports copies); Clone produces an
// independent duplicate. The slice returned by Slice is a view that becomes
// stale as soon as the container grows.
//
// # Failures
//
// Out-of-range indexing panics with an *IndexError. A capacity that cannot
// be represented panics with a *CapacityError; both unwrap to the exported
// sentinel errors. Running out of memory is fatal, as for any Go allocation.
package smolvec
