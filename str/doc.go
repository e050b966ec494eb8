// Package str provides String, a dynamic string of fixed-width code units.
//
// # Overview
//
// String[U] stores units of type U (byte, uint16 or rune) in a growable
// buffer and always keeps a zero unit directly after the last one, so CStr
// can hand the contents to code that expects a terminated sequence:
//
//	s := str.FromString("hello")
//	raw := s.CStr() // []byte{'h','e','l','l','o',0}
//
// Bytes, U16 and U32 name the three common instantiations.
//
// # Units, not characters
//
// Every operation works on units. A multi-byte UTF-8 sequence in Bytes or a
// surrogate pair in U16 is just several units; searching, comparison and
// indexing never decode them. The codec helpers (DecodeWith, EncodeWith,
// FromUTF16LE, DecodeUTF16, EncodeUTF16) convert at the boundary only.
//
// # Searching
//
// The Find family returns an index or NPos. A start position beyond Len()
// yields NPos immediately; it is never an error. RFind and the FindLast
// family accept NPos as "start from the end".
//
// # Errors
//
// Index-based mutators and Substr/CompareSub/CopyTo fail with
// lzt.ErrOutOfRange for a start index beyond Len(). Counts are clamped to the
// units available, and NPos as a count means "to the end".
package str
