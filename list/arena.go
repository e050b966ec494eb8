package list

import (
	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/growbuf"
	"github.com/joshuapare/lzt/internal/rawmem"
)

// Sentinel slots.
const (
	head = 0
	tail = 1
)

type node[T any] struct {
	prev, next int
	gen        uint32
	used       bool
	v          T
}

// arena owns the node slots of one list.
type arena[T any] struct {
	nodes   growbuf.Buffer[node[T]]
	free    []int
	destroy bool
}

func newArena[T any](alloc rawmem.Allocator[node[T]]) *arena[T] {
	a := &arena[T]{
		nodes:   growbuf.New[node[T]](0, alloc),
		destroy: lzt.CanDestroy[T](),
	}
	return a
}

// init places the sentinels. It fails only when the allocator does.
func (a *arena[T]) init() error {
	if a.nodes.Len() > 0 {
		return nil
	}
	return a.nodes.AppendValues(
		node[T]{prev: tail, next: tail, used: true},
		node[T]{prev: head, next: head, used: true},
	)
}

func (a *arena[T]) at(i int) *node[T] { return a.nodes.Ptr(i) }

// acquire returns an unused slot, reusing freed ones first.
func (a *arena[T]) acquire() (int, error) {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		return i, nil
	}
	if err := a.nodes.PushBack(node[T]{}); err != nil {
		return 0, err
	}
	return a.nodes.Len() - 1, nil
}

// release puts slot i back on the free stack. Positions naming it go stale.
func (a *arena[T]) release(i int) {
	nd := a.at(i)
	var zero T
	nd.v = zero
	nd.used = false
	nd.prev, nd.next = 0, 0
	nd.gen++
	a.free = append(a.free, i)
}

// link places the used slot i before slot at.
func (a *arena[T]) link(i, at int) {
	nd, after := a.at(i), a.at(at)
	nd.prev, nd.next = after.prev, at
	a.at(after.prev).next = i
	after.prev = i
}

// unlink detaches slot i and returns the slot that followed it.
func (a *arena[T]) unlink(i int) int {
	nd := a.at(i)
	a.at(nd.prev).next = nd.next
	a.at(nd.next).prev = nd.prev
	return nd.next
}

// slots returns the number of slots, sentinels and free ones included.
func (a *arena[T]) slots() int { return a.nodes.Len() }
