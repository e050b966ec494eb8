package str

import (
	"slices"

	"github.com/joshuapare/lzt/internal/buf"
)

// Compare orders s against other unit by unit; a proper prefix orders
// first. It returns -1, 0 or +1.
func (s *String[U]) Compare(other *String[U]) int {
	return slices.Compare(s.Data(), other.Data())
}

// CompareUnits orders s against units.
func (s *String[U]) CompareUnits(units []U) int {
	return slices.Compare(s.Data(), units)
}

// CompareSub orders up to count1 units of s starting at pos1 against other.
func (s *String[U]) CompareSub(pos1, count1 int, other *String[U]) (int, error) {
	sub, err := s.span("compare", pos1, count1)
	if err != nil {
		return 0, err
	}
	return slices.Compare(sub, other.Data()), nil
}

// CompareSubs orders a span of s against a span of other.
func (s *String[U]) CompareSubs(pos1, count1 int, other *String[U], pos2, count2 int) (int, error) {
	a, err := s.span("compare", pos1, count1)
	if err != nil {
		return 0, err
	}
	b, err := other.span("compare", pos2, count2)
	if err != nil {
		return 0, err
	}
	return slices.Compare(a, b), nil
}

// Equal reports whether s and other hold the same units.
func (s *String[U]) Equal(other *String[U]) bool {
	return slices.Equal(s.Data(), other.Data())
}

// span returns up to count units starting at pos.
func (s *String[U]) span(op string, pos, count int) ([]U, error) {
	if err := s.checkIndex(op, pos); err != nil {
		return nil, err
	}
	n := buf.Clamp(count, s.Len(), pos)
	return s.Data()[pos : pos+n], nil
}
