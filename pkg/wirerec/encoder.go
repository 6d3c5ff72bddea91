package wirerec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/unistr"
)

// EncodeString serializes a snapshot of s. With FlagCompressed set the
// payload bytes go through zstd; small frames usually are not worth it.
func (f *StringFrame) EncodeString(s *unistr.OwnedString, flags byte) ([]byte, error) {
	f.buf = &bytes.Buffer{}
	writePreamble(f.buf, TypeString)

	// reserve length + flags
	binary.Write(f.buf, binary.LittleEndian, uint32(0)) // length placeholder
	f.buf.WriteByte(flags)

	d := s.Descriptor()
	binary.Write(f.buf, binary.LittleEndian, d.Length)
	binary.Write(f.buf, binary.LittleEndian, d.MaximumLength)

	// payload = physical buffer as little-endian bytes
	payload := make([]byte, 0, int(d.MaximumLength))
	for _, u := range s.Units() {
		payload = append(payload, byte(u), byte(u>>8))
	}
	if flags&FlagCompressed != 0 {
		comp, err := compressPayload(payload)
		if err != nil {
			return nil, err
		}
		payload = comp
	}
	f.buf.Write(payload)

	// fill in length (includes everything up to + including CRC)
	out := f.buf.Bytes()
	total := uint32(len(out) + 4)
	binary.LittleEndian.PutUint32(out[3:], total)

	// CRC32 over the frame minus magic, appended last
	crc := crc32.ChecksumIEEE(out[2:])
	out = append(out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(out)-4:], crc)
	return out, nil
}

func compressPayload(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}
