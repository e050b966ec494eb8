package list

import "github.com/joshuapare/lzt"

func (a *arena[T]) pos(i int) Pos[T] {
	return Pos[T]{a: a, idx: i, gen: a.at(i).gen}
}

// valid reports whether p still names a live slot.
func (p Pos[T]) valid() bool {
	if p.a == nil || p.idx >= p.a.slots() {
		return false
	}
	nd := p.a.at(p.idx)
	return nd.used && nd.gen == p.gen
}

// Next returns the position after p. Past the last element that is End.
// A stale p yields the zero Pos.
func (p Pos[T]) Next() Pos[T] {
	if !p.valid() || p.idx == tail {
		return Pos[T]{}
	}
	return p.a.pos(p.a.at(p.idx).next)
}

// Prev returns the position before p. Before the first element that is the
// zero Pos.
func (p Pos[T]) Prev() Pos[T] {
	if !p.valid() {
		return Pos[T]{}
	}
	prev := p.a.at(p.idx).prev
	if prev == head || p.idx == head {
		return Pos[T]{}
	}
	return p.a.pos(prev)
}

// Value returns the element at p.
func (p Pos[T]) Value() (T, error) {
	var zero T
	if !p.valid() {
		return zero, lzt.Stale("list: value: position names a removed node")
	}
	if p.idx == head || p.idx == tail {
		return zero, lzt.OutOfRange("list: value: position is an end of the list")
	}
	return p.a.at(p.idx).v, nil
}

// Set replaces the element at p. The previous value is destroyed.
func (p Pos[T]) Set(v T) error {
	if _, err := p.Value(); err != nil {
		return err
	}
	nd := p.a.at(p.idx)
	if p.a.destroy {
		lzt.Destroy(nd.v)
	}
	nd.v = v
	return nil
}
