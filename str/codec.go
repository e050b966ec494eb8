package str

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/lzt/internal/buf"
)

// ErrOddLength is returned when raw UTF-16 or UTF-32 input is not a whole
// number of units.
var ErrOddLength = errors.New("str: partial code unit in input")

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeCharmap decodes b from a legacy code page such as
// charmap.Windows1252 into a UTF-8 byte string.
func DecodeCharmap(b []byte, enc encoding.Encoding) (*Bytes, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("str: decode: %w", err)
	}
	return FromUnits(out), nil
}

// EncodeCharmap encodes the UTF-8 units of s into a legacy code page. Runes
// the code page cannot represent are an error.
func EncodeCharmap(s *Bytes, enc encoding.Encoding) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes(s.Data())
	if err != nil {
		return nil, fmt.Errorf("str: encode: %w", err)
	}
	return out, nil
}

// FromUTF16LE reads raw little-endian UTF-16 into a U16 string. Units are
// copied as they are, unpaired surrogates included.
func FromUTF16LE(b []byte) (*U16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddLength, len(b))
	}
	s := New[uint16]()
	if err := s.Reserve(len(b) / 2); err != nil {
		return nil, fmt.Errorf("str: from utf16: %w", err)
	}
	for off := 0; off < len(b); off += 2 {
		_ = s.PushBack(buf.U16LE(b[off:]))
	}
	return s, nil
}

// EncodeUTF16LE writes the units of s as little-endian bytes, without a
// terminator.
func EncodeUTF16LE(s *U16) []byte {
	out := make([]byte, 0, 2*s.Len())
	for _, u := range s.Data() {
		out = buf.AppendU16LE(out, u)
	}
	return out
}

// FromUTF32LE reads raw little-endian UTF-32 into a U32 string.
func FromUTF32LE(b []byte) (*U32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddLength, len(b))
	}
	s := New[rune]()
	if err := s.Reserve(len(b) / 4); err != nil {
		return nil, fmt.Errorf("str: from utf32: %w", err)
	}
	for off := 0; off < len(b); off += 4 {
		_ = s.PushBack(rune(buf.U32LE(b[off:])))
	}
	return s, nil
}

// EncodeUTF32LE writes the units of s as little-endian bytes, without a
// terminator.
func EncodeUTF32LE(s *U32) []byte {
	out := make([]byte, 0, 4*s.Len())
	for _, u := range s.Data() {
		out = buf.AppendU32LE(out, uint32(u))
	}
	return out
}

// UTF16ToUTF8 transcodes s to UTF-8. Unpaired surrogates become U+FFFD.
func UTF16ToUTF8(s *U16) (*Bytes, error) {
	out, _, err := transform.Bytes(utf16LE.NewDecoder(), EncodeUTF16LE(s))
	if err != nil {
		return nil, fmt.Errorf("str: utf16 to utf8: %w", err)
	}
	return FromUnits(out), nil
}

// UTF8ToUTF16 transcodes the UTF-8 units of s to UTF-16.
func UTF8ToUTF16(s *Bytes) (*U16, error) {
	raw, err := utf16LE.NewEncoder().Bytes(s.Data())
	if err != nil {
		return nil, fmt.Errorf("str: utf8 to utf16: %w", err)
	}
	return FromUTF16LE(raw)
}
