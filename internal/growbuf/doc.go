// Package growbuf implements the growable contiguous buffer shared by
// vector.Vector and str.String.
//
// # Overview
//
// A Buffer owns one block of slots from a rawmem.Allocator. Slots [0, Len())
// hold live elements; the remaining slots hold zero values. A buffer may
// reserve a fixed number of trailing slots past the live range (the string
// terminator); they are never counted by Len or Cap.
//
// # Growth
//
// When an operation needs room for extra elements the buffer reallocates to
//
//	max(Len()+extra, 2*Cap())    (1 when Cap() == 0)
//
// which keeps appends amortized O(1). Reserve grows to the exact amount
// requested. Capacity never shrinks implicitly; ShrinkToFit is explicit.
//
// # Positions
//
// Every block gets a fresh storage id. A Pos records the id of the block it
// was taken from, so any reallocation invalidates all outstanding positions
// and Resolve reports lzt.ErrStalePosition for them.
//
// # Failure
//
// A failed allocation leaves the buffer untouched. A failed element
// constructor during InsertAt destroys the elements that call already
// constructed, moves the trailing elements back and leaves Len unchanged.
package growbuf
