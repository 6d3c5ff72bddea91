// Package wirerec frames OwnedString snapshots for fixtures and debugging:
// preamble, total length, flags, the two descriptor byte lengths, the
// physical buffer in little-endian order, and a trailing CRC32. The frame
// restores an equivalent buffer including trailing-zero padding; it is a
// sidecar format, not part of the in-memory descriptor contract.
package wirerec

import (
	"bytes"
	"errors"
)

const (
	magic0 = 0x57 // 'W'
	magic1 = 0x53 // 'S'

	TypeString = 0x01

	// FlagCompressed marks a zstd-compressed payload.
	FlagCompressed = 0x01
)

// HeaderSize covers preamble(3) + total length(4) + flags(1) + Length(2) +
// MaximumLength(2).
const HeaderSize = 12

var (
	ErrNotStringFrame = errors.New("not a string frame")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrCRCMismatch    = errors.New("crc mismatch")
	ErrBadPayload     = errors.New("payload does not match descriptor lengths")
)

// StringFrame carries reusable scratch for encoding and decoding frames.
type StringFrame struct {
	buf *bytes.Buffer
	rdr *bytes.Reader
}

func writePreamble(buf *bytes.Buffer, frameType byte) {
	buf.WriteByte(magic0)
	buf.WriteByte(magic1)
	buf.WriteByte(frameType)
}

func readPreamble(rdr *bytes.Reader) (byte, error) {
	var pre [3]byte
	if _, err := rdr.Read(pre[:]); err != nil {
		return 0, err
	}
	if pre[0] != magic0 || pre[1] != magic1 {
		return 0, errors.New("bad magic")
	}
	return pre[2], nil
}
