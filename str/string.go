package str

import (
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/buf"
	"github.com/joshuapare/lzt/internal/growbuf"
)

// NPos is the not-found result of the Find family and the "until the end"
// count. It is the largest representable size.
const NPos = math.MaxInt

// Unit is the set of code unit types a String can hold.
type Unit interface {
	~uint8 | ~uint16 | ~int32
}

// Pos names a unit slot. Reallocation invalidates every outstanding Pos.
type Pos = growbuf.Pos

// String is a growable, zero-terminated sequence of units. The zero value is
// an empty string ready to use.
type String[U Unit] struct {
	b growbuf.Buffer[U]
}

type (
	// Bytes is a string of 8-bit units.
	Bytes = String[byte]
	// U16 is a string of 16-bit units.
	U16 = String[uint16]
	// U32 is a string of 32-bit units.
	U32 = String[rune]
)

// core returns the buffer, configured with the terminator slot.
func (s *String[U]) core() *growbuf.Buffer[U] {
	if !s.b.Ready() {
		s.b.Init(1, nil)
	}
	return &s.b
}

// New returns an empty string holding only its terminator.
func New[U Unit]() *String[U] {
	s := &String[U]{}
	_ = s.core().Reserve(0)
	return s
}

// Repeat returns a string of count copies of u.
func Repeat[U Unit](count int, u U) (*String[U], error) {
	s := New[U]()
	if err := s.AppendRepeat(count, u); err != nil {
		return nil, err
	}
	return s, nil
}

// FromUnits returns a string holding a copy of units.
func FromUnits[U Unit](units []U) *String[U] {
	s := New[U]()
	// A slice that already exists in memory always fits MaxLen.
	_ = s.core().AppendValues(units...)
	return s
}

// FromTerminated returns a string holding units up to, not including, the
// first zero unit. Without a zero unit the whole slice is used.
func FromTerminated[U Unit](units []U) *String[U] {
	return FromUnits(units[:terminatedLen(units)])
}

// FromString returns a byte string holding the bytes of s.
func FromString(s string) *Bytes {
	return FromUnits([]byte(s))
}

func terminatedLen[U Unit](units []U) int {
	for i, u := range units {
		if u == 0 {
			return i
		}
	}
	return len(units)
}

// Len returns the number of units, not counting the terminator.
func (s *String[U]) Len() int { return s.b.Len() }

// Cap returns the number of units the string holds before reallocating.
// The terminator slot is not counted.
func (s *String[U]) Cap() int { return s.b.Cap() }

// Empty reports whether the string has no units.
func (s *String[U]) Empty() bool { return s.b.Len() == 0 }

// MaxLen returns the largest length a string of U can reach.
func (s *String[U]) MaxLen() int { return s.core().MaxLen() }

// At returns unit i or lzt.ErrOutOfRange when i is not in [0, Len()).
func (s *String[U]) At(i int) (U, error) {
	u, err := s.b.At(i)
	if err != nil {
		return u, fmt.Errorf("str: at: %w", err)
	}
	return u, nil
}

// Index returns unit i. It does not check i against Len; Index(Len()) is
// the terminator.
func (s *String[U]) Index(i int) U { return s.b.Get(i) }

// SetAt replaces unit i.
func (s *String[U]) SetAt(i int, u U) error { return s.core().Set(i, u) }

// Front returns the first unit. The string must not be empty.
func (s *String[U]) Front() U { return s.b.Get(0) }

// Back returns the last unit. The string must not be empty.
func (s *String[U]) Back() U { return s.b.Get(s.b.Len() - 1) }

// Data returns the units without the terminator. The slice aliases the
// string's storage and is invalidated by the next reallocation.
func (s *String[U]) Data() []U { return s.b.Live() }

// CStr returns the units followed by the zero terminator. The slice aliases
// the string's storage and is invalidated by the next reallocation.
func (s *String[U]) CStr() []U {
	if raw := s.b.Raw(); raw != nil {
		return raw
	}
	return []U{0}
}

// String renders the units. Byte strings are returned verbatim; wider units
// are written one rune per unit.
func (s *String[U]) String() string {
	units := s.b.Live()
	if bs, ok := any(units).([]byte); ok {
		return string(bs)
	}
	var sb strings.Builder
	sb.Grow(len(units))
	for _, u := range units {
		sb.WriteRune(rune(u))
	}
	return sb.String()
}

// Begin returns the position of the first unit.
func (s *String[U]) Begin() Pos { return s.b.PosAt(0) }

// End returns the position of the terminator.
func (s *String[U]) End() Pos { return s.b.PosAt(s.b.Len()) }

// PosAt returns the position of unit i.
func (s *String[U]) PosAt(i int) Pos { return s.b.PosAt(i) }

// Reserve makes room for at least n units.
func (s *String[U]) Reserve(n int) error { return s.core().Reserve(n) }

// ShrinkToFit reallocates to exactly Len units plus the terminator.
func (s *String[U]) ShrinkToFit() error { return s.core().ShrinkToFit() }

// Clear removes every unit and keeps the capacity.
func (s *String[U]) Clear() { s.core().Clear() }

// Release removes every unit and frees the storage.
func (s *String[U]) Release() { s.core().Release() }

// Swap exchanges the contents of s and other.
func (s *String[U]) Swap(other *String[U]) {
	s.core().Swap(other.core())
}

// Take moves s's storage into a new string and leaves s empty and reusable.
func (s *String[U]) Take() *String[U] {
	return &String[U]{b: s.core().Take()}
}

// Clone returns an independent copy.
func (s *String[U]) Clone() (*String[U], error) {
	b, err := s.core().Clone()
	if err != nil {
		return nil, err
	}
	return &String[U]{b: b}, nil
}

// Substr returns a new string of up to count units starting at pos.
func (s *String[U]) Substr(pos, count int) (*String[U], error) {
	if err := s.checkIndex("substr", pos); err != nil {
		return nil, err
	}
	n := buf.Clamp(count, s.b.Len(), pos)
	return FromUnits(s.b.Live()[pos : pos+n]), nil
}

// CopyTo copies up to count units starting at pos into dst and returns the
// number copied. It does not write a terminator.
func (s *String[U]) CopyTo(dst []U, count, pos int) (int, error) {
	if err := s.checkIndex("copy", pos); err != nil {
		return 0, err
	}
	n := buf.Clamp(count, s.b.Len(), pos)
	return copy(dst, s.b.Live()[pos:pos+n]), nil
}

func (s *String[U]) checkIndex(op string, index int) error {
	if index < 0 || index > s.b.Len() {
		return lzt.OutOfRange("str: %s: index %d out of range [0,%d]", op, index, s.b.Len())
	}
	return nil
}
