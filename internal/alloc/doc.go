// Package alloc provides the heap buffers backing spilled containers.
//
// A buffer is an ordinary Go slice whose length equals its capacity; the
// slot count is therefore always recorded alongside the buffer. Make checks
// the requested size before asking the runtime for memory so that an
// impossible request is reported as ErrCapacityOverflow rather than as a
// runtime error from make.
//
// # Statistics
//
// Every allocation, release and relocation is counted in process-wide
// atomic counters. Snapshot returns a consistent-enough view for tests and
// benchmarks; the counters are not a synchronization mechanism.
package alloc
