package rawmem

import (
	"math"
	"unsafe"

	"github.com/joshuapare/lzt"
)

// Allocator hands out and reclaims blocks of element slots.
type Allocator[T any] interface {
	// Allocate returns a block of exactly n zero-valued slots.
	Allocate(n int) ([]T, error)
	// Deallocate returns a block previously obtained from Allocate.
	// A nil or empty block is ignored.
	Deallocate(block []T)
}

// MaxLen returns the largest number of T slots a single block may hold.
func MaxLen[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Heap allocates blocks from the Go heap.
type Heap[T any] struct{}

// Allocate returns a zeroed block of n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > MaxLen[T]() {
		return nil, lzt.Length("rawmem: cannot allocate %d slots (max %d)", n, MaxLen[T]())
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate clears the block so anything it references can be collected.
func (Heap[T]) Deallocate(block []T) {
	clear(block)
}
