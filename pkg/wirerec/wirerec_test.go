package wirerec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/unistr"
)

func mustString(t *testing.T, text string) *unistr.OwnedString {
	t.Helper()
	s, err := unistr.FromString(text)
	require.NoError(t, err)
	return s
}

func TestRoundTrip(t *testing.T) {
	f := &StringFrame{}
	for _, text := range []string{"", "Hello, world !", "こんにちは", "😀"} {
		s := mustString(t, text)
		frame, err := f.EncodeString(s, 0)
		require.NoError(t, err)

		got, err := f.DecodeString(frame)
		require.NoError(t, err)
		require.True(t, s.Equal(got))
		require.Equal(t, s.Len(), got.Len())
		require.Equal(t, s.Cap(), got.Cap())
	}
}

func TestRoundTripPreservesPadding(t *testing.T) {
	s := mustString(t, "Test")
	_, err := s.EnsureTerminated()
	require.NoError(t, err)

	f := &StringFrame{}
	frame, err := f.EncodeString(s, 0)
	require.NoError(t, err)
	got, err := f.DecodeString(frame)
	require.NoError(t, err)
	require.Equal(t, s.Units(), got.Units())
	require.Equal(t, 8, got.Len())
	require.Equal(t, 10, got.Cap())
}

func TestRoundTripCompressed(t *testing.T) {
	s := mustString(t, strings.Repeat("compressible text ", 200))
	f := &StringFrame{}

	plain, err := f.EncodeString(s, 0)
	require.NoError(t, err)
	comp, err := f.EncodeString(s, FlagCompressed)
	require.NoError(t, err)
	require.Less(t, len(comp), len(plain))

	got, err := f.DecodeString(comp)
	require.NoError(t, err)
	require.True(t, s.Equal(got))
}

func TestDecodeRejectsCorruption(t *testing.T) {
	f := &StringFrame{}
	frame, err := f.EncodeString(mustString(t, "Hello"), 0)
	require.NoError(t, err)

	corrupted := append([]byte(nil), frame...)
	corrupted[HeaderSize] ^= 0xff
	_, err = f.DecodeString(corrupted)
	require.ErrorIs(t, err, ErrCRCMismatch)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	f := &StringFrame{}
	frame, err := f.EncodeString(mustString(t, "Hello"), 0)
	require.NoError(t, err)

	_, err = f.DecodeString(frame[:len(frame)-4])
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = f.DecodeString(frame[:6])
	require.ErrorIs(t, err, ErrNotStringFrame)
}

func TestDecodeRejectsWrongType(t *testing.T) {
	f := &StringFrame{}
	frame, err := f.EncodeString(mustString(t, "Hello"), 0)
	require.NoError(t, err)

	frame[2] = 0x7f
	_, err = f.DecodeString(frame)
	require.ErrorIs(t, err, ErrNotStringFrame)
}
