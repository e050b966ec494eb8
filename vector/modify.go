package vector

import (
	"fmt"

	"github.com/joshuapare/lzt"
)

// PushBack appends x. It fails only when the vector cannot grow.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.b.PushBack(x); err != nil {
		return fmt.Errorf("vector: push back: %w", err)
	}
	return nil
}

// EmplaceBack constructs an element at the end with ctor and returns its
// address. If ctor fails the vector is unchanged apart from any growth.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if err := v.b.Append(1, func(int) (T, error) { return ctor() }); err != nil {
		return nil, fmt.Errorf("vector: emplace back: %w", err)
	}
	return v.b.Ptr(v.b.Len() - 1), nil
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() { v.b.PopBack() }

// Insert inserts x before p and returns the position of the new element.
func (v *Vector[T]) Insert(p Pos, x T) (Pos, error) {
	return v.insert("insert", p, 1, func(int) (T, error) { return x, nil })
}

// InsertN inserts count copies of x before p and returns the position of the
// first new element, or p's offset when count is zero.
func (v *Vector[T]) InsertN(p Pos, count int, x T) (Pos, error) {
	return v.insert("insert", p, count, func(int) (T, error) { return x, nil })
}

// InsertSlice inserts xs before p. xs may alias the vector's own storage.
func (v *Vector[T]) InsertSlice(p Pos, xs ...T) (Pos, error) {
	off, err := v.b.Resolve(p, true)
	if err != nil {
		return p, fmt.Errorf("vector: insert: %w", err)
	}
	if _, err := v.b.InsertValues(off, xs...); err != nil {
		return p, fmt.Errorf("vector: insert: %w", err)
	}
	return v.b.PosAt(off), nil
}

// InsertFunc constructs count elements before p, calling ctor with the
// ordinal of each. When ctor fails, the elements it already produced are
// destroyed, the vector keeps its previous contents and length, and ctor's
// error is returned.
func (v *Vector[T]) InsertFunc(p Pos, count int, ctor func(i int) (T, error)) (Pos, error) {
	return v.insert("insert", p, count, ctor)
}

// Emplace constructs one element before p with ctor.
func (v *Vector[T]) Emplace(p Pos, ctor func() (T, error)) (Pos, error) {
	return v.insert("emplace", p, 1, func(int) (T, error) { return ctor() })
}

func (v *Vector[T]) insert(op string, p Pos, count int, ctor func(int) (T, error)) (Pos, error) {
	off, err := v.b.Resolve(p, true)
	if err != nil {
		return p, fmt.Errorf("vector: %s: %w", op, err)
	}
	if _, err := v.b.InsertAt(off, count, ctor); err != nil {
		return p, fmt.Errorf("vector: %s: %w", op, err)
	}
	return v.b.PosAt(off), nil
}

// Erase destroys the element at p and returns the position of the element
// that followed it.
func (v *Vector[T]) Erase(p Pos) (Pos, error) {
	off, err := v.b.Resolve(p, false)
	if err != nil {
		return p, fmt.Errorf("vector: erase: %w", err)
	}
	if _, err := v.b.EraseAt(off, 1); err != nil {
		return p, fmt.Errorf("vector: erase: %w", err)
	}
	return v.b.PosAt(off), nil
}

// EraseRange destroys the elements in [first, last) and returns the position
// of the element that followed them.
func (v *Vector[T]) EraseRange(first, last Pos) (Pos, error) {
	lo, err := v.b.Resolve(first, true)
	if err != nil {
		return first, fmt.Errorf("vector: erase: %w", err)
	}
	hi, err := v.b.Resolve(last, true)
	if err != nil {
		return first, fmt.Errorf("vector: erase: %w", err)
	}
	if hi < lo {
		return first, lzt.OutOfRange("vector: erase: range [%d,%d) is inverted", lo, hi)
	}
	if _, err := v.b.EraseAt(lo, hi-lo); err != nil {
		return first, fmt.Errorf("vector: erase: %w", err)
	}
	return v.b.PosAt(lo), nil
}

// Resize changes the length to n, appending zero values or destroying the
// trailing excess.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, appending copies of fill or destroying
// the trailing excess.
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	if err := v.b.Resize(n, fill); err != nil {
		return fmt.Errorf("vector: resize: %w", err)
	}
	return nil
}
