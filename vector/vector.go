package vector

import (
	"fmt"
	"iter"

	"github.com/joshuapare/lzt/internal/growbuf"
	"github.com/joshuapare/lzt/internal/rawmem"
)

// Pos names an element slot. See the package documentation for invalidation
// rules.
type Pos = growbuf.Pos

// Vector is a dynamic array. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	b growbuf.Buffer[T]
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

func newWithAllocator[T any](alloc rawmem.Allocator[T]) *Vector[T] {
	v := &Vector[T]{}
	v.b.Init(0, alloc)
	return v
}

// Of returns a vector holding values, with capacity equal to their count.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	// Heap allocation of len(values) slots cannot exceed MaxLen.
	_ = v.b.AppendValues(values...)
	return v
}

// WithCapacity returns an empty vector with room for n elements.
func WithCapacity[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.b.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Filled returns a vector of n copies of value.
func Filled[T any](n int, value T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.b.Resize(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.b.Len() }

// Cap returns the number of elements the vector holds before reallocating.
func (v *Vector[T]) Cap() int { return v.b.Cap() }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.b.Len() == 0 }

// MaxLen returns the largest length a vector of T can reach.
func (v *Vector[T]) MaxLen() int { return v.b.MaxLen() }

// At returns element i or lzt.ErrOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	x, err := v.b.At(i)
	if err != nil {
		return x, fmt.Errorf("vector: at: %w", err)
	}
	return x, nil
}

// Index returns element i. It does not check i against Len.
func (v *Vector[T]) Index(i int) T { return v.b.Get(i) }

// Ref returns the address of element i. It does not check i against Len.
// The pointer is invalidated by the next reallocation.
func (v *Vector[T]) Ref(i int) *T { return v.b.Ptr(i) }

// Set replaces element i, destroying the previous value.
func (v *Vector[T]) Set(i int, x T) error { return v.b.Set(i, x) }

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T { return v.b.Get(0) }

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T { return v.b.Get(v.b.Len() - 1) }

// Data returns the elements as a slice aliasing the vector's storage. The
// slice is invalidated by the next reallocation.
func (v *Vector[T]) Data() []T { return v.b.Live() }

// Reserve makes room for at least n elements without changing Len.
func (v *Vector[T]) Reserve(n int) error { return v.b.Reserve(n) }

// ShrinkToFit reallocates to exactly Len elements.
func (v *Vector[T]) ShrinkToFit() error { return v.b.ShrinkToFit() }

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() { v.b.Clear() }

// Release destroys every element and frees the storage.
func (v *Vector[T]) Release() { v.b.Release() }

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Pos { return v.b.PosAt(0) }

// End returns the position one past the last element.
func (v *Vector[T]) End() Pos { return v.b.PosAt(v.b.Len()) }

// PosAt returns the position of element i.
func (v *Vector[T]) PosAt(i int) Pos { return v.b.PosAt(i) }

// Get returns the element at p.
func (v *Vector[T]) Get(p Pos) (T, error) {
	i, err := v.b.Resolve(p, false)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.b.Get(i), nil
}

// All returns an iterator over index/element pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.b.Len(); i++ {
			if !yield(i, v.b.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.b.Len(); i++ {
			if !yield(v.b.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.b.Len() - 1; i >= 0; i-- {
			if !yield(i, v.b.Get(i)) {
				return
			}
		}
	}
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) { v.b.Swap(&other.b) }

// Take moves v's storage into a new vector and leaves v empty and reusable.
func (v *Vector[T]) Take() *Vector[T] {
	return &Vector[T]{b: v.b.Take()}
}

// Clone returns an independent copy with the same capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	b, err := v.b.Clone()
	if err != nil {
		return nil, err
	}
	return &Vector[T]{b: b}, nil
}

// CloneFunc returns a deep copy whose elements are produced by copyFn. If
// copyFn fails the copies made so far are destroyed and its error returned.
func (v *Vector[T]) CloneFunc(copyFn func(T) (T, error)) (*Vector[T], error) {
	b, err := v.b.CloneFunc(copyFn)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{b: b}, nil
}
