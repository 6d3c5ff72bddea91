package wirerec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/unistr"
)

// DecodeString parses a string frame and rebuilds the OwnedString it
// snapshotted, trailing-zero padding included. The stored logical length is
// checked against the recomputed descriptor.
func (f *StringFrame) DecodeString(data []byte) (*unistr.OwnedString, error) {
	if len(data) < HeaderSize+4 {
		return nil, ErrNotStringFrame
	}
	f.rdr = bytes.NewReader(data)
	t, err := readPreamble(f.rdr)
	if err != nil || t != TypeString {
		return nil, ErrNotStringFrame
	}

	var total uint32
	binary.Read(f.rdr, binary.LittleEndian, &total)
	if int(total) != len(data) {
		return nil, ErrLengthMismatch
	}
	flags, _ := f.rdr.ReadByte()

	var length, maximum uint16
	binary.Read(f.rdr, binary.LittleEndian, &length)
	binary.Read(f.rdr, binary.LittleEndian, &maximum)

	// CRC covers the frame minus magic and minus itself
	want := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.ChecksumIEEE(data[2:len(data)-4]) != want {
		return nil, ErrCRCMismatch
	}

	payload := data[HeaderSize : len(data)-4]
	if flags&FlagCompressed != 0 {
		payload, err = decompressPayload(payload)
		if err != nil {
			return nil, err
		}
	}
	if len(payload) != int(maximum) {
		return nil, ErrBadPayload
	}

	units := make([]uint16, len(payload)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(payload[i*2:])
	}
	s, err := unistr.FromUnits(units)
	if err != nil {
		return nil, err
	}
	if s.Len() != int(length) {
		return nil, ErrBadPayload
	}
	return s, nil
}

func decompressPayload(comp []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(comp, nil)
}
