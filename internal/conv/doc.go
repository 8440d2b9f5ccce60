// Package conv provides checked integer arithmetic and conversions.
//
// The helpers report overflow as an error instead of wrapping silently.
// They guard capacity computations (slot count × element size) and the
// fixed-width integers written to and read from encoded frames.
package conv
