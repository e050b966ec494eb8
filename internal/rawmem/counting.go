package rawmem

// Counting wraps an allocator and records every allocation and release.
type Counting[T any] struct {
	inner Allocator[T]

	allocs int
	frees  int
	slots  int
	live   map[*T]int
}

// NewCounting wraps inner. A nil inner uses Heap.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{inner: inner, live: make(map[*T]int)}
}

// Allocate forwards to the wrapped allocator and records the block.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.allocs++
	c.slots += n
	if len(block) > 0 {
		c.live[&block[0]] = len(block)
	}
	return block, nil
}

// Deallocate forwards to the wrapped allocator and forgets the block.
func (c *Counting[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	delete(c.live, &block[0])
	c.frees++
	c.inner.Deallocate(block)
}

// Allocs returns the number of non-failed Allocate calls.
func (c *Counting[T]) Allocs() int { return c.allocs }

// Frees returns the number of non-empty blocks returned.
func (c *Counting[T]) Frees() int { return c.frees }

// Slots returns the total number of slots handed out over the allocator's life.
func (c *Counting[T]) Slots() int { return c.slots }

// Live returns the number of non-empty blocks currently handed out.
func (c *Counting[T]) Live() int { return len(c.live) }

// Owns reports whether block is a live block from this allocator.
func (c *Counting[T]) Owns(block []T) bool {
	if len(block) == 0 {
		return false
	}
	n, ok := c.live[&block[0]]
	return ok && n == len(block)
}
