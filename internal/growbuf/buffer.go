package growbuf

import (
	"fmt"
	"sync/atomic"

	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/buf"
	"github.com/joshuapare/lzt/internal/rawmem"
)

// storageIDs hands out block identities. Zero means "no storage".
var storageIDs atomic.Uint64

// Buffer is a growable run of contiguous elements. The zero value is an empty
// buffer with no reserved trailing slots using the heap allocator.
type Buffer[T any] struct {
	slots []T // whole block, len(slots) == Cap()+tail when allocated
	n     int // live elements
	tail  int // reserved slots after the live range
	id    uint64

	alloc   rawmem.Allocator[T]
	destroy bool // T may implement lzt.Destroyer
	ready   bool

	moves    int
	reallocs int
}

// New returns an empty buffer that keeps tail zero slots after its live
// elements. A nil alloc uses rawmem.Heap.
func New[T any](tail int, alloc rawmem.Allocator[T]) Buffer[T] {
	var b Buffer[T]
	b.Init(tail, alloc)
	return b
}

// Init configures an empty buffer. It is a no-op on an initialized buffer.
func (b *Buffer[T]) Init(tail int, alloc rawmem.Allocator[T]) {
	if b.ready {
		return
	}
	if alloc == nil {
		alloc = rawmem.Heap[T]{}
	}
	b.tail = tail
	b.alloc = alloc
	b.destroy = lzt.CanDestroy[T]()
	b.ready = true
}

// Ready reports whether Init has run.
func (b *Buffer[T]) Ready() bool { return b.ready }

func (b *Buffer[T]) lazy() {
	if !b.ready {
		b.Init(0, nil)
	}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the number of elements the buffer holds before reallocating.
func (b *Buffer[T]) Cap() int {
	if len(b.slots) == 0 {
		return 0
	}
	return len(b.slots) - b.tail
}

// MaxLen returns the largest length the buffer can ever reach.
func (b *Buffer[T]) MaxLen() int { return rawmem.MaxLen[T]() - b.tail }

// Moves returns the number of element relocations performed by growth and
// shifting over the buffer's life.
func (b *Buffer[T]) Moves() int { return b.moves }

// Reallocs returns the number of storage blocks the buffer has switched to.
func (b *Buffer[T]) Reallocs() int { return b.reallocs }

// Allocated reports whether the buffer currently owns a storage block.
func (b *Buffer[T]) Allocated() bool { return len(b.slots) > 0 }

// Live returns the live elements. The slice aliases the storage and is
// invalidated by the next reallocation.
func (b *Buffer[T]) Live() []T {
	if b.slots == nil {
		return nil
	}
	return b.slots[:b.n:b.n]
}

// Raw returns the live elements followed by the reserved trailing slots.
func (b *Buffer[T]) Raw() []T {
	if len(b.slots) == 0 {
		return nil
	}
	end := b.n + b.tail
	return b.slots[:end:end]
}

// Get returns element i without a range check against Len.
func (b *Buffer[T]) Get(i int) T { return b.slots[i] }

// Ptr returns the address of element i without a range check against Len.
func (b *Buffer[T]) Ptr(i int) *T { return &b.slots[i] }

// At returns element i, or lzt.ErrOutOfRange when i is not in [0, Len()).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.n {
		var zero T
		return zero, lzt.OutOfRange("index %d out of range [0,%d)", i, b.n)
	}
	return b.slots[i], nil
}

// Set replaces element i. The previous value is destroyed.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.n {
		return lzt.OutOfRange("index %d out of range [0,%d)", i, b.n)
	}
	b.lazy()
	if b.destroy {
		lzt.Destroy(b.slots[i])
	}
	b.slots[i] = v
	return nil
}

// PosAt returns a position for offset off in the current storage.
func (b *Buffer[T]) PosAt(off int) Pos { return Pos{off: off, id: b.id} }

// Resolve converts p into an offset. Positions from another storage block
// fail with lzt.ErrStalePosition. The offset must lie in [0, Len()], or in
// [0, Len()) when allowEnd is false.
func (b *Buffer[T]) Resolve(p Pos, allowEnd bool) (int, error) {
	if p.id != b.id {
		return 0, lzt.Stale("position %d refers to released storage", p.off)
	}
	limit := b.n
	if !allowEnd {
		limit--
	}
	if p.off < 0 || p.off > limit {
		return 0, lzt.OutOfRange("position %d out of range [0,%d]", p.off, limit)
	}
	return p.off, nil
}

// Reserve makes room for at least n elements. It never shrinks.
func (b *Buffer[T]) Reserve(n int) error {
	b.lazy()
	if n < 0 || n > b.MaxLen() {
		return lzt.Length("reserve %d exceeds max length %d", n, b.MaxLen())
	}
	if b.fits(n) {
		return nil
	}
	return b.reallocate(max(n, b.Cap()))
}

// ShrinkToFit reallocates to exactly Len() elements.
func (b *Buffer[T]) ShrinkToFit() error {
	b.lazy()
	if b.n == b.Cap() {
		return nil
	}
	if b.n == 0 && b.tail == 0 {
		b.releaseStorage()
		return nil
	}
	return b.reallocate(b.n)
}

// GrowFor makes sure extra more elements fit, reallocating by the amortized
// doubling policy when they do not.
func (b *Buffer[T]) GrowFor(extra int) error {
	b.lazy()
	need, ok := buf.AddOverflowSafe(b.n, extra)
	if !ok || need > b.MaxLen() {
		return lzt.Length("length %d + %d exceeds max length %d", b.n, extra, b.MaxLen())
	}
	if b.fits(need) {
		return nil
	}
	next := 1
	if c := b.Cap(); c > 0 {
		doubled, ok := buf.MulOverflowSafe(c, 2)
		if !ok {
			return lzt.Length("capacity %d cannot double", c)
		}
		next = min(doubled, b.MaxLen())
	}
	return b.reallocate(max(need, next))
}

// fits reports whether n elements fit the current storage. Buffers with
// reserved trailing slots need a block even when empty.
func (b *Buffer[T]) fits(n int) bool {
	return n <= b.Cap() && (b.tail == 0 || b.Allocated())
}

// reallocate moves the live elements into a fresh block of capacity slots.
// On allocation failure nothing changes.
func (b *Buffer[T]) reallocate(capacity int) error {
	total, ok := buf.AddOverflowSafe(capacity, b.tail)
	if !ok {
		return lzt.Length("capacity %d overflows", capacity)
	}
	slots, err := b.alloc.Allocate(total)
	if err != nil {
		return fmt.Errorf("growbuf: reallocate to %d: %w", capacity, err)
	}
	b.moves += copy(slots, b.slots[:b.n])
	b.alloc.Deallocate(b.slots)
	b.slots = slots
	b.id = storageIDs.Add(1)
	b.reallocs++
	return nil
}

func (b *Buffer[T]) releaseStorage() {
	b.alloc.Deallocate(b.slots)
	b.slots = nil
	b.id = 0
}

// destroyRange ends the lifetime of elements [from, to) and zeroes their slots.
func (b *Buffer[T]) destroyRange(from, to int) {
	if b.destroy {
		for i := from; i < to; i++ {
			lzt.Destroy(b.slots[i])
		}
	}
	clear(b.slots[from:to])
}

// openGap moves elements [index, n) right by count. The caller has grown the
// storage already. copy handles the overlap like a back-to-front move.
func (b *Buffer[T]) openGap(index, count int) {
	b.moves += copy(b.slots[index+count:b.n+count], b.slots[index:b.n])
	clear(b.slots[index:min(index+count, b.n)])
}

// closeGap moves elements [index+count, n+count) left by count, undoing
// openGap. The gap must hold zero values.
func (b *Buffer[T]) closeGap(index, count int) {
	b.moves += copy(b.slots[index:b.n], b.slots[index+count:b.n+count])
	clear(b.slots[b.n : b.n+count])
}

// InsertAt constructs count elements at index, calling ctor with the
// ordinal of each new element. Elements at and after index shift right.
//
// When ctor fails the elements already constructed by this call are
// destroyed, the shifted elements move back and ctor's error is returned.
func (b *Buffer[T]) InsertAt(index, count int, ctor func(i int) (T, error)) (int, error) {
	b.lazy()
	if index < 0 || index > b.n {
		return index, lzt.OutOfRange("insert index %d out of range [0,%d]", index, b.n)
	}
	if count < 0 {
		return index, lzt.OutOfRange("insert count %d is negative", count)
	}
	if count == 0 {
		return index, nil
	}
	if err := b.GrowFor(count); err != nil {
		return index, err
	}

	b.openGap(index, count)
	for i := range count {
		v, err := ctor(i)
		if err != nil {
			b.destroyRange(index, index+i)
			b.closeGap(index, count)
			return index, err
		}
		b.slots[index+i] = v
	}
	b.n += count
	return index, nil
}

// InsertValues inserts vals at index. vals may alias the buffer's own storage.
func (b *Buffer[T]) InsertValues(index int, vals ...T) (int, error) {
	if buf.Overlaps(vals, b.slots) {
		vals = append([]T(nil), vals...)
	}
	return b.InsertAt(index, len(vals), func(i int) (T, error) { return vals[i], nil })
}

// InsertFill inserts count copies of v at index.
func (b *Buffer[T]) InsertFill(index, count int, v T) (int, error) {
	return b.InsertAt(index, count, func(int) (T, error) { return v, nil })
}

// Append constructs count elements after the last one.
func (b *Buffer[T]) Append(count int, ctor func(i int) (T, error)) error {
	_, err := b.InsertAt(b.n, count, ctor)
	return err
}

// AppendValues appends vals. vals may alias the buffer's own storage.
func (b *Buffer[T]) AppendValues(vals ...T) error {
	_, err := b.InsertValues(b.n, vals...)
	return err
}

// PushBack appends a single value.
func (b *Buffer[T]) PushBack(v T) error {
	if err := b.GrowFor(1); err != nil {
		return err
	}
	b.slots[b.n] = v
	b.n++
	return nil
}

// EraseAt destroys count elements starting at index and closes the gap.
func (b *Buffer[T]) EraseAt(index, count int) (int, error) {
	b.lazy()
	end, err := buf.CheckRange(b.n, index, count)
	if err != nil {
		return index, lzt.OutOfRange("erase [%d,+%d) of %d: %v", index, count, b.n, err)
	}
	if count == 0 {
		return index, nil
	}
	b.destroyRange(index, end)
	b.moves += copy(b.slots[index:], b.slots[end:b.n])
	clear(b.slots[b.n-count : b.n])
	b.n -= count
	return index, nil
}

// PopBack destroys the last element. It does nothing on an empty buffer.
func (b *Buffer[T]) PopBack() {
	if b.n == 0 {
		return
	}
	b.lazy()
	b.destroyRange(b.n-1, b.n)
	b.n--
}

// Resize grows with copies of fill or shrinks by destroying the excess.
// Growth reserves exactly n elements.
func (b *Buffer[T]) Resize(n int, fill T) error {
	b.lazy()
	switch {
	case n < 0:
		return lzt.OutOfRange("resize to negative length %d", n)
	case n > b.n:
		if err := b.Reserve(n); err != nil {
			return err
		}
		for i := b.n; i < n; i++ {
			b.slots[i] = fill
		}
	case n < b.n:
		b.destroyRange(n, b.n)
	}
	b.n = n
	return nil
}

// Clear destroys every element. Capacity is kept.
func (b *Buffer[T]) Clear() {
	if b.n == 0 {
		return
	}
	b.lazy()
	b.destroyRange(0, b.n)
	b.n = 0
}

// Release destroys every element and returns the storage to the allocator.
func (b *Buffer[T]) Release() {
	b.Clear()
	if b.slots != nil {
		b.releaseStorage()
	}
}

// Swap exchanges the contents of b and o, allocators included.
func (b *Buffer[T]) Swap(o *Buffer[T]) {
	*b, *o = *o, *b
}

// Take moves the storage out of b into the returned buffer and leaves b
// empty and reusable. Positions into the storage stay valid on the result.
func (b *Buffer[T]) Take() Buffer[T] {
	b.lazy()
	out := *b
	b.slots = nil
	b.n = 0
	b.id = 0
	b.moves = 0
	b.reallocs = 0
	return out
}

// CloneFunc returns an independent buffer with the same capacity whose
// elements are produced by copyFn. On failure the elements copied so far are
// destroyed, the new storage is released and b is unchanged.
func (b *Buffer[T]) CloneFunc(copyFn func(T) (T, error)) (Buffer[T], error) {
	b.lazy()
	out := New[T](b.tail, b.alloc)
	if !b.Allocated() {
		return out, nil
	}
	if err := out.reallocate(b.Cap()); err != nil {
		return out, err
	}
	for i := range b.n {
		v, err := copyFn(b.slots[i])
		if err != nil {
			out.Release()
			return New[T](b.tail, b.alloc), err
		}
		out.slots[i] = v
		out.n++
	}
	return out, nil
}

// Clone returns an element-wise copy of b. It fails only when the allocator
// cannot provide the new storage.
func (b *Buffer[T]) Clone() (Buffer[T], error) {
	return b.CloneFunc(func(v T) (T, error) { return v, nil })
}
