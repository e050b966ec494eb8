package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestCodec_Charmap(t *testing.T) {
	s, err := DecodeCharmap([]byte{'c', 'o', 0x96, 0x80}, charmap.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "co–€", s.String())
	requireTerminated(t, s)

	raw, err := EncodeCharmap(s, charmap.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'o', 0x96, 0x80}, raw)

	_, err = EncodeCharmap(FromString("日本"), charmap.Windows1252)
	assert.Error(t, err)
}

func TestCodec_UTF16LE(t *testing.T) {
	s, err := FromUTF16LE([]byte{'H', 0, 'i', 0, 0x00, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'H', 'i', 0xD800}, s.Data(), "units are kept as read")
	requireTerminated(t, s)

	assert.Equal(t, []byte{'H', 0, 'i', 0, 0x00, 0xD8}, EncodeUTF16LE(s))

	_, err = FromUTF16LE([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrOddLength)

	empty, err := FromUTF16LE(nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Empty(t, EncodeUTF16LE(empty))
}

func TestCodec_UTF8RoundTrip(t *testing.T) {
	w, err := UTF8ToUTF16(FromString("h€𝄞"))
	require.NoError(t, err)
	assert.Equal(t, []uint16{'h', 0x20AC, 0xD834, 0xDD1E}, w.Data())

	b, err := UTF16ToUTF8(w)
	require.NoError(t, err)
	assert.Equal(t, "h€𝄞", b.String())

	bad := FromUnits([]uint16{'a', 0xDC00})
	b, err = UTF16ToUTF8(bad)
	require.NoError(t, err)
	assert.Equal(t, "a�", b.String())
}

func TestCodec_UTF32LE(t *testing.T) {
	raw := []byte{'h', 0, 0, 0, 0x1E, 0xD1, 0x01, 0}
	s, err := FromUTF32LE(raw)
	require.NoError(t, err)
	assert.Equal(t, "h𝄞", s.String())
	requireTerminated(t, s)
	assert.Equal(t, raw, EncodeUTF32LE(s))

	_, err = FromUTF32LE(raw[:6])
	assert.ErrorIs(t, err, ErrOddLength)
}
