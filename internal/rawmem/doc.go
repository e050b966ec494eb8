// Package rawmem provides untyped-storage allocation for the growable buffers.
//
// # Overview
//
// An Allocator hands out blocks of n element slots and takes them back. It
// never constructs or destroys elements: a fresh block holds zero values and
// the buffer that owns it decides which slots are live.
//
// # Implementations
//
// Heap: the default allocator, backed by the Go heap
//
//   - rejects requests above MaxLen[T]() with lzt.ErrLength
//   - Deallocate clears the block so referenced objects become collectable
//
// Counting: wraps another allocator and records every call
//
//   - Allocs/Frees/Live expose the number of blocks handed out and returned
//   - used by tests and lztctl to measure growth and detect leaks
//
// Budget: wraps another allocator and fails once a total element budget is used
//
//   - returns ErrExhausted without touching the caller's existing block
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Each buffer owns its allocator.
package rawmem
