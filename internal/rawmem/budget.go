package rawmem

import "fmt"

// Budget wraps an allocator and refuses allocations once the total number of
// slots handed out would exceed Limit. Released blocks give their slots back.
type Budget[T any] struct {
	inner Allocator[T]
	limit int
	used  int
}

// NewBudget wraps inner with a budget of limit slots. A nil inner uses Heap.
func NewBudget[T any](inner Allocator[T], limit int) *Budget[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Budget[T]{inner: inner, limit: limit}
}

// Allocate fails with ErrExhausted when n slots would exceed the budget.
func (b *Budget[T]) Allocate(n int) ([]T, error) {
	if n > b.limit-b.used {
		return nil, fmt.Errorf("allocate %d slots (%d of %d used): %w", n, b.used, b.limit, ErrExhausted)
	}
	block, err := b.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	b.used += len(block)
	return block, nil
}

// Deallocate returns the block's slots to the budget.
func (b *Budget[T]) Deallocate(block []T) {
	b.used -= len(block)
	b.inner.Deallocate(block)
}

// Used returns the number of slots currently held by live blocks.
func (b *Budget[T]) Used() int { return b.used }

// SetLimit changes the budget. Blocks already handed out are unaffected.
func (b *Budget[T]) SetLimit(limit int) { b.limit = limit }
