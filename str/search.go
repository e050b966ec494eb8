package str

import (
	"bytes"
	"slices"
)

// Find returns the index of the first occurrence of other at or after pos,
// or NPos.
func (s *String[U]) Find(other *String[U], pos int) int {
	return s.FindUnits(other.Data(), pos)
}

// FindUnits returns the index of the first occurrence of pattern at or after
// pos, or NPos. An empty pattern matches at pos when pos <= Len().
func (s *String[U]) FindUnits(pattern []U, pos int) int {
	units := s.Data()
	if pos < 0 || pos > len(units) {
		return NPos
	}
	if len(pattern) == 0 {
		return pos
	}
	if i := index(units[pos:], pattern); i >= 0 {
		return pos + i
	}
	return NPos
}

// FindUnit returns the index of the first u at or after pos, or NPos.
func (s *String[U]) FindUnit(u U, pos int) int {
	units := s.Data()
	if pos < 0 || pos >= len(units) {
		return NPos
	}
	if i := slices.Index(units[pos:], u); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the index of the last occurrence of other that starts at or
// before pos, or NPos.
func (s *String[U]) RFind(other *String[U], pos int) int {
	return s.RFindUnits(other.Data(), pos)
}

// RFindUnits returns the index of the last occurrence of pattern that starts
// at or before pos, or NPos. An empty pattern matches at min(pos, Len()).
func (s *String[U]) RFindUnits(pattern []U, pos int) int {
	units := s.Data()
	if pos < 0 || len(pattern) > len(units) {
		return NPos
	}
	start := min(pos, len(units)-len(pattern))
	for i := start; i >= 0; i-- {
		if slices.Equal(units[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return NPos
}

// RFindUnit returns the index of the last u at or before pos, or NPos.
func (s *String[U]) RFindUnit(u U, pos int) int {
	return s.RFindUnits([]U{u}, pos)
}

// FindFirstOf returns the index of the first unit at or after pos that is in
// set, or NPos.
func (s *String[U]) FindFirstOf(set []U, pos int) int {
	return s.scanForward(pos, func(u U) bool { return slices.Contains(set, u) })
}

// FindFirstNotOf returns the index of the first unit at or after pos that is
// not in set, or NPos.
func (s *String[U]) FindFirstNotOf(set []U, pos int) int {
	return s.scanForward(pos, func(u U) bool { return !slices.Contains(set, u) })
}

// FindLastOf returns the index of the last unit at or before pos that is in
// set, or NPos.
func (s *String[U]) FindLastOf(set []U, pos int) int {
	return s.scanBackward(pos, func(u U) bool { return slices.Contains(set, u) })
}

// FindLastNotOf returns the index of the last unit at or before pos that is
// not in set, or NPos.
func (s *String[U]) FindLastNotOf(set []U, pos int) int {
	return s.scanBackward(pos, func(u U) bool { return !slices.Contains(set, u) })
}

func (s *String[U]) scanForward(pos int, match func(U) bool) int {
	units := s.Data()
	if pos < 0 || pos >= len(units) {
		return NPos
	}
	if i := slices.IndexFunc(units[pos:], match); i >= 0 {
		return pos + i
	}
	return NPos
}

func (s *String[U]) scanBackward(pos int, match func(U) bool) int {
	units := s.Data()
	if pos < 0 || len(units) == 0 {
		return NPos
	}
	for i := min(pos, len(units)-1); i >= 0; i-- {
		if match(units[i]) {
			return i
		}
	}
	return NPos
}

// index finds pattern in units. Byte units go through bytes.Index.
func index[U Unit](units, pattern []U) int {
	if hay, ok := any(units).([]byte); ok {
		return bytes.Index(hay, any(pattern).([]byte))
	}
	last := len(units) - len(pattern)
	for i := 0; i <= last; i++ {
		if units[i] == pattern[0] && slices.Equal(units[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}
