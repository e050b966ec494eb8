package list

import (
	"fmt"
	"iter"

	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/rawmem"
)

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	a     *arena[T]
	n     int
	alloc rawmem.Allocator[node[T]]
}

// Pos names a node of a List, or one of its ends.
type Pos[T any] struct {
	a   *arena[T]
	idx int
	gen uint32
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

func newWithAllocator[T any](alloc rawmem.Allocator[node[T]]) *List[T] {
	return &List[T]{alloc: alloc}
}

// Of returns a list holding values in order.
func Of[T any](values ...T) (*List[T], error) {
	l := New[T]()
	for _, v := range values {
		if err := l.PushBack(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// ready returns the arena, creating it and its sentinels on first use.
func (l *List[T]) ready() (*arena[T], error) {
	if l.a == nil {
		l.a = newArena[T](l.alloc)
	}
	if err := l.a.init(); err != nil {
		return nil, fmt.Errorf("list: sentinels: %w", err)
	}
	return l.a, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.n == 0 }

// Front returns the first element, or the zero value on an empty list.
func (l *List[T]) Front() T {
	if l.n == 0 {
		var zero T
		return zero
	}
	return l.a.at(l.a.at(head).next).v
}

// Back returns the last element, or the zero value on an empty list.
func (l *List[T]) Back() T {
	if l.n == 0 {
		var zero T
		return zero
	}
	return l.a.at(l.a.at(tail).prev).v
}

// Begin returns the position of the first element, or End on an empty list.
func (l *List[T]) Begin() Pos[T] {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}
	}
	return a.pos(a.at(head).next)
}

// End returns the position after the last element.
func (l *List[T]) End() Pos[T] {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}
	}
	return a.pos(tail)
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) error {
	_, err := l.emplaceBefore(head, true, func() (T, error) { return v, nil })
	return err
}

// PushBack inserts v after the last element.
func (l *List[T]) PushBack(v T) error {
	_, err := l.emplaceBefore(tail, false, func() (T, error) { return v, nil })
	return err
}

// EmplaceFront constructs an element with ctor before the first element.
func (l *List[T]) EmplaceFront(ctor func() (T, error)) (Pos[T], error) {
	return l.emplaceBefore(head, true, ctor)
}

// EmplaceBack constructs an element with ctor after the last element.
func (l *List[T]) EmplaceBack(ctor func() (T, error)) (Pos[T], error) {
	return l.emplaceBefore(tail, false, ctor)
}

// emplaceBefore links a new node before slot at, or after it when after is
// set. Only the head sentinel is passed with after set.
func (l *List[T]) emplaceBefore(at int, after bool, ctor func() (T, error)) (Pos[T], error) {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}, err
	}
	if after {
		at = a.at(at).next
	}
	return l.construct(a, at, ctor)
}

// construct fills a fresh slot with ctor's value and links it before at. On
// failure the slot goes back on the free stack and the list is unchanged.
func (l *List[T]) construct(a *arena[T], at int, ctor func() (T, error)) (Pos[T], error) {
	i, err := a.acquire()
	if err != nil {
		return Pos[T]{}, fmt.Errorf("list: node: %w", err)
	}
	v, err := ctor()
	if err != nil {
		a.release(i)
		return Pos[T]{}, err
	}
	nd := a.at(i)
	nd.v = v
	nd.used = true
	a.link(i, at)
	l.n++
	return a.pos(i), nil
}

// Emplace constructs an element with ctor before p in O(1) and returns its
// position. p may be End.
func (l *List[T]) Emplace(p Pos[T], ctor func() (T, error)) (Pos[T], error) {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}, err
	}
	at, err := l.resolve(p, true)
	if err != nil {
		return p, fmt.Errorf("list: emplace: %w", err)
	}
	return l.construct(a, at, ctor)
}

// EmplaceAt constructs an element with ctor so that it ends up at index.
// It walks from whichever end is nearer.
func (l *List[T]) EmplaceAt(index int, ctor func() (T, error)) (Pos[T], error) {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}, err
	}
	if index < 0 || index > l.n {
		return Pos[T]{}, lzt.OutOfRange("list: emplace at %d out of range [0,%d]", index, l.n)
	}
	return l.construct(a, l.walk(index), ctor)
}

// Insert inserts v before p and returns its position.
func (l *List[T]) Insert(p Pos[T], v T) (Pos[T], error) {
	return l.Emplace(p, func() (T, error) { return v, nil })
}

// InsertAt inserts v so that it ends up at index.
func (l *List[T]) InsertAt(index int, v T) (Pos[T], error) {
	return l.EmplaceAt(index, func() (T, error) { return v, nil })
}

// walk returns the slot currently at index, or the tail sentinel when
// index == Len().
func (l *List[T]) walk(index int) int {
	a := l.a
	if index <= l.n/2 {
		i := a.at(head).next
		for range index {
			i = a.at(i).next
		}
		return i
	}
	i := tail
	for range l.n - index {
		i = a.at(i).prev
	}
	return i
}

// PosAt returns the position of element index, or End when index == Len().
func (l *List[T]) PosAt(index int) (Pos[T], error) {
	a, err := l.ready()
	if err != nil {
		return Pos[T]{}, err
	}
	if index < 0 || index > l.n {
		return Pos[T]{}, lzt.OutOfRange("list: position %d out of range [0,%d]", index, l.n)
	}
	return a.pos(l.walk(index)), nil
}

// Erase removes the element at p and returns the position after it.
func (l *List[T]) Erase(p Pos[T]) (Pos[T], error) {
	i, err := l.resolve(p, false)
	if err != nil {
		return p, fmt.Errorf("list: erase: %w", err)
	}
	return l.a.pos(l.remove(i)), nil
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	if l.n == 0 {
		return
	}
	l.remove(l.a.at(head).next)
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	if l.n == 0 {
		return
	}
	l.remove(l.a.at(tail).prev)
}

// remove unlinks slot i, destroys its value and frees the slot.
func (l *List[T]) remove(i int) int {
	a := l.a
	next := a.unlink(i)
	if a.destroy {
		lzt.Destroy(a.at(i).v)
	}
	a.release(i)
	l.n--
	return next
}

// Clear removes every element, front first.
func (l *List[T]) Clear() {
	for l.n > 0 {
		l.PopFront()
	}
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// Take moves l's nodes into a new list in O(1) and leaves l empty and
// reusable. Positions into l stay valid on the result.
func (l *List[T]) Take() *List[T] {
	out := &List[T]{a: l.a, n: l.n, alloc: l.alloc}
	l.a = nil
	l.n = 0
	return out
}

// Clone returns an independent copy.
func (l *List[T]) Clone() (*List[T], error) {
	return l.CloneFunc(func(v T) (T, error) { return v, nil })
}

// CloneFunc returns a deep copy built in traversal order, each element
// produced by copyFn. If copyFn fails the copies made so far are destroyed
// and its error returned.
func (l *List[T]) CloneFunc(copyFn func(T) (T, error)) (*List[T], error) {
	out := &List[T]{alloc: l.alloc}
	for v := range l.Values() {
		if _, err := out.EmplaceBack(func() (T, error) { return copyFn(v) }); err != nil {
			out.Clear()
			return nil, err
		}
	}
	return out, nil
}

// resolve checks that p names a live node of l, or the tail sentinel when
// allowEnd is set, and returns its slot.
func (l *List[T]) resolve(p Pos[T], allowEnd bool) (int, error) {
	if p.a == nil || p.a != l.a {
		return 0, lzt.Stale("position does not belong to this list")
	}
	if !p.valid() {
		return 0, lzt.Stale("position names a removed node")
	}
	switch {
	case p.idx == head:
		return 0, lzt.OutOfRange("position is before the first element")
	case p.idx == tail && !allowEnd:
		return 0, lzt.OutOfRange("position is the end of the list")
	}
	return p.idx, nil
}

// All returns an iterator over index/element pairs from front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.n == 0 {
			return
		}
		a := l.a
		for i, k := a.at(head).next, 0; i != tail; i, k = a.at(i).next, k+1 {
			if !yield(k, a.at(i).v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.n == 0 {
			return
		}
		a := l.a
		for i, k := a.at(tail).prev, l.n-1; i != head; i, k = a.at(i).prev, k-1 {
			if !yield(k, a.at(i).v) {
				return
			}
		}
	}
}
