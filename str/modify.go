package str

import (
	"fmt"
	"slices"

	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/buf"
	"github.com/joshuapare/lzt/internal/growbuf"
)

// Insert inserts the units of other before index.
func (s *String[U]) Insert(index int, other *String[U]) error {
	return s.insertUnits("insert", index, other.Data())
}

// InsertUnits inserts units before index. units may alias s.
func (s *String[U]) InsertUnits(index int, units ...U) error {
	return s.insertUnits("insert", index, units)
}

// InsertRepeat inserts count copies of u before index.
func (s *String[U]) InsertRepeat(index, count int, u U) error {
	if _, err := s.core().InsertFill(index, count, u); err != nil {
		return fmt.Errorf("str: insert: %w", err)
	}
	return nil
}

// InsertSub inserts up to count units of other, starting at other's
// sIndex, before index.
func (s *String[U]) InsertSub(index int, other *String[U], sIndex, count int) error {
	if err := other.checkIndex("insert", sIndex); err != nil {
		return err
	}
	n := buf.Clamp(count, other.Len(), sIndex)
	return s.insertUnits("insert", index, other.Data()[sIndex:sIndex+n])
}

// InsertAtPos inserts units before p and returns the position of the first
// inserted unit.
func (s *String[U]) InsertAtPos(p Pos, units ...U) (Pos, error) {
	index, err := s.core().Resolve(p, true)
	if err != nil {
		return p, fmt.Errorf("str: insert: %w", err)
	}
	if err := s.insertUnits("insert", index, units); err != nil {
		return p, err
	}
	return s.b.PosAt(index), nil
}

// InsertRepeatAtPos inserts count copies of u before p and returns the
// position of the first inserted unit.
func (s *String[U]) InsertRepeatAtPos(p Pos, count int, u U) (Pos, error) {
	index, err := s.core().Resolve(p, true)
	if err != nil {
		return p, fmt.Errorf("str: insert: %w", err)
	}
	if err := s.InsertRepeat(index, count, u); err != nil {
		return p, err
	}
	return s.b.PosAt(index), nil
}

func (s *String[U]) insertUnits(op string, index int, units []U) error {
	if _, err := s.core().InsertValues(index, units...); err != nil {
		return fmt.Errorf("str: %s: %w", op, err)
	}
	return nil
}

// Erase removes up to count units starting at index. NPos erases to the end.
func (s *String[U]) Erase(index, count int) error {
	if err := s.checkIndex("erase", index); err != nil {
		return err
	}
	n := buf.Clamp(count, s.b.Len(), index)
	if _, err := s.core().EraseAt(index, n); err != nil {
		return fmt.Errorf("str: erase: %w", err)
	}
	return nil
}

// ErasePos removes the unit at p and returns the position that now holds
// the unit after it.
func (s *String[U]) ErasePos(p Pos) (Pos, error) {
	index, err := s.core().Resolve(p, false)
	if err != nil {
		return p, fmt.Errorf("str: erase: %w", err)
	}
	if _, err := s.core().EraseAt(index, 1); err != nil {
		return p, fmt.Errorf("str: erase: %w", err)
	}
	return s.b.PosAt(index), nil
}

// EraseRange removes the units in [first, last).
func (s *String[U]) EraseRange(first, last Pos) (Pos, error) {
	lo, hi, err := s.resolveRange("erase", first, last)
	if err != nil {
		return first, err
	}
	if _, err := s.core().EraseAt(lo, hi-lo); err != nil {
		return first, fmt.Errorf("str: erase: %w", err)
	}
	return s.b.PosAt(lo), nil
}

func (s *String[U]) resolveRange(op string, first, last Pos) (int, int, error) {
	lo, err := s.core().Resolve(first, true)
	if err != nil {
		return 0, 0, fmt.Errorf("str: %s: %w", op, err)
	}
	hi, err := s.core().Resolve(last, true)
	if err != nil {
		return 0, 0, fmt.Errorf("str: %s: %w", op, err)
	}
	if hi < lo {
		return 0, 0, lzt.OutOfRange("str: %s: range [%d,%d) is inverted", op, lo, hi)
	}
	return lo, hi, nil
}

// PushBack appends u.
func (s *String[U]) PushBack(u U) error {
	if err := s.core().PushBack(u); err != nil {
		return fmt.Errorf("str: push back: %w", err)
	}
	return nil
}

// PopBack removes the last unit. It does nothing on an empty string.
func (s *String[U]) PopBack() { s.core().PopBack() }

// Append appends the units of other. other may be s.
func (s *String[U]) Append(other *String[U]) error {
	return s.insertUnits("append", s.b.Len(), other.Data())
}

// AppendUnits appends units.
func (s *String[U]) AppendUnits(units ...U) error {
	return s.insertUnits("append", s.b.Len(), units)
}

// AppendString appends the bytes of a Go string, one unit per byte.
func (s *String[U]) AppendString(str string) error {
	units := make([]U, len(str))
	for i := range len(str) {
		units[i] = U(str[i])
	}
	return s.insertUnits("append", s.b.Len(), units)
}

// AppendRepeat appends count copies of u.
func (s *String[U]) AppendRepeat(count int, u U) error {
	if _, err := s.core().InsertFill(s.b.Len(), count, u); err != nil {
		return fmt.Errorf("str: append: %w", err)
	}
	return nil
}

// AppendSub appends up to count units of other starting at pos.
func (s *String[U]) AppendSub(other *String[U], pos, count int) error {
	if err := other.checkIndex("append", pos); err != nil {
		return err
	}
	n := buf.Clamp(count, other.Len(), pos)
	return s.insertUnits("append", s.b.Len(), other.Data()[pos:pos+n])
}

// Replace substitutes up to count units starting at pos with other.
func (s *String[U]) Replace(pos, count int, other *String[U]) error {
	return s.replace(pos, count, other.Data())
}

// ReplaceUnits substitutes up to count units starting at pos with units.
func (s *String[U]) ReplaceUnits(pos, count int, units ...U) error {
	return s.replace(pos, count, units)
}

// ReplaceRepeat substitutes up to count units starting at pos with n
// copies of u.
func (s *String[U]) ReplaceRepeat(pos, count, n int, u U) error {
	if n < 0 {
		return lzt.OutOfRange("str: replace: count %d is negative", n)
	}
	return s.splice(pos, count, n, func(b *growbuf.Buffer[U]) error {
		_, err := b.InsertFill(pos, n, u)
		return err
	})
}

// ReplaceSub substitutes up to count1 units at pos1 with up to count2 units
// of other starting at pos2.
func (s *String[U]) ReplaceSub(pos1, count1 int, other *String[U], pos2, count2 int) error {
	if err := other.checkIndex("replace", pos2); err != nil {
		return err
	}
	n := buf.Clamp(count2, other.Len(), pos2)
	return s.replace(pos1, count1, other.Data()[pos2:pos2+n])
}

// ReplaceRange substitutes the units in [first, last) with units.
func (s *String[U]) ReplaceRange(first, last Pos, units ...U) error {
	lo, hi, err := s.resolveRange("replace", first, last)
	if err != nil {
		return err
	}
	return s.replace(lo, hi-lo, units)
}

// replace splices units in at pos, copying them first when they alias s.
func (s *String[U]) replace(pos, count int, units []U) error {
	if buf.Overlaps(units, s.b.Raw()) {
		units = slices.Clone(units)
	}
	return s.splice(pos, count, len(units), func(b *growbuf.Buffer[U]) error {
		_, err := b.InsertValues(pos, units...)
		return err
	})
}

// splice erases up to count units at pos and calls insert to put n units
// in their place. Room for the result is reserved before anything is erased.
func (s *String[U]) splice(pos, count, n int, insert func(b *growbuf.Buffer[U]) error) error {
	if err := s.checkIndex("replace", pos); err != nil {
		return err
	}
	count = buf.Clamp(count, s.b.Len(), pos)
	b := s.core()
	if grow := n - count; grow > 0 {
		if err := b.GrowFor(grow); err != nil {
			return fmt.Errorf("str: replace: %w", err)
		}
	}
	if _, err := b.EraseAt(pos, count); err != nil {
		return fmt.Errorf("str: replace: %w", err)
	}
	if err := insert(b); err != nil {
		return fmt.Errorf("str: replace: %w", err)
	}
	return nil
}

// Resize changes the length to n, appending zero units or truncating.
func (s *String[U]) Resize(n int) error {
	return s.ResizeWith(n, 0)
}

// ResizeWith changes the length to n, appending copies of u or truncating.
func (s *String[U]) ResizeWith(n int, u U) error {
	if n > s.MaxLen() {
		return lzt.Length("str: resize to %d exceeds max length %d", n, s.MaxLen())
	}
	if err := s.core().Resize(n, u); err != nil {
		return fmt.Errorf("str: resize: %w", err)
	}
	return nil
}
