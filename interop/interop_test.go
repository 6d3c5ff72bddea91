package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/unistr"
	"github.com/rawbytedev/unistr/interop"
)

func TestBytesUnitsAlias(t *testing.T) {
	units := []uint16{'H', 'i', 0x20ac}
	b := interop.Bytes(units)
	require.Len(t, b, 6)

	back, err := interop.Units(b)
	require.NoError(t, err)
	require.Equal(t, units, back)

	// shared memory, not a copy
	back[0] = 'h'
	require.Equal(t, uint16('h'), units[0])
}

func TestBytesEmpty(t *testing.T) {
	require.Nil(t, interop.Bytes(nil))
	units, err := interop.Units(nil)
	require.NoError(t, err)
	require.Nil(t, units)
}

func TestUnitsOddLength(t *testing.T) {
	_, err := interop.Units([]byte{1, 2, 3})
	require.ErrorIs(t, err, interop.ErrOddLength)
}

func TestUnitsMisaligned(t *testing.T) {
	b := interop.Bytes([]uint16{'a', 'b'}) // 2-byte aligned by construction
	_, err := interop.Units(b[1:3])
	require.ErrorIs(t, err, interop.ErrMisaligned)
}

func TestSlice(t *testing.T) {
	units := []uint16{'a', 'b', 'c'}
	view := interop.Slice(&units[0], 2)
	require.Equal(t, []uint16{'a', 'b'}, view)
	require.Nil(t, interop.Slice(nil, 3))
	require.Nil(t, interop.Slice(&units[0], 0))
}

func TestEncodeDecodeBytes(t *testing.T) {
	const text = "Hej, värld"

	le, err := interop.EncodeBytes(text, interop.LittleEndian)
	require.NoError(t, err)
	got, err := interop.DecodeBytes(le, interop.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, text, got)

	be, err := interop.EncodeBytes(text, interop.BigEndian)
	require.NoError(t, err)
	require.NotEqual(t, le, be)
	got, err = interop.DecodeBytes(be, interop.BigEndian)
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestDecodeBytesBOM(t *testing.T) {
	const text = "bom test"
	b, err := interop.EncodeBytes(text, interop.ExpectBOM)
	require.NoError(t, err)
	// encoder emits a leading BOM the decoder consumes
	require.Equal(t, []byte{0xff, 0xfe}, b[:2])
	got, err := interop.DecodeBytes(b, interop.ExpectBOM)
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestFromEncoded(t *testing.T) {
	le, err := interop.EncodeBytes("Hello", interop.LittleEndian)
	require.NoError(t, err)
	s, err := interop.FromEncoded(le, interop.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, "Hello", s.String())
	require.Equal(t, 10, s.Len())
}

func TestEncoded(t *testing.T) {
	s, err := unistr.FromString("Hello")
	require.NoError(t, err)
	b, err := interop.Encoded(s, interop.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, []byte{'H', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0}, b)
}

func TestUnitsIntoOwnedString(t *testing.T) {
	// host hands us raw LE bytes of a terminated wide string
	raw := []byte{'O', 0, 'K', 0, 0, 0}
	units, err := interop.Units(raw)
	require.NoError(t, err)
	owned := make([]uint16, len(units))
	copy(owned, units)
	s, err := unistr.FromUnits(owned)
	require.NoError(t, err)
	require.Equal(t, "OK", s.String())
	require.Equal(t, 4, s.Len())
	require.Equal(t, 6, s.Cap())
}
