package interop

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/rawbytedev/unistr"
)

// Encoding selects the byte order and BOM policy of a UTF-16 byte stream.
type Encoding struct {
	Order unicode.Endianness
	BOM   unicode.BOMPolicy
}

var (
	// LittleEndian is plain UTF-16LE, no BOM, the usual host wire form.
	LittleEndian = Encoding{unicode.LittleEndian, unicode.IgnoreBOM}
	// BigEndian is plain UTF-16BE, no BOM.
	BigEndian = Encoding{unicode.BigEndian, unicode.IgnoreBOM}
	// ExpectBOM consumes a leading BOM to pick the order, defaulting to
	// little-endian when none is present.
	ExpectBOM = Encoding{unicode.LittleEndian, unicode.UseBOM}
)

// DecodeBytes converts a UTF-16 byte stream to text. Unlike the zero-copy
// Units alias, this path copies and therefore tolerates foreign order,
// unaligned input, and a BOM, per e.
func DecodeBytes(b []byte, e Encoding) (string, error) {
	dec := unicode.UTF16(e.Order, e.BOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeBytes converts text to a UTF-16 byte stream per e.
func EncodeBytes(text string, e Encoding) ([]byte, error) {
	enc := unicode.UTF16(e.Order, e.BOM).NewEncoder()
	return enc.Bytes([]byte(text))
}

// FromEncoded builds an OwnedString from a UTF-16 byte stream per e.
func FromEncoded(b []byte, e Encoding) (*unistr.OwnedString, error) {
	text, err := DecodeBytes(b, e)
	if err != nil {
		return nil, err
	}
	return unistr.FromString(text)
}

// Encoded renders the logical content of s as a UTF-16 byte stream per e.
// Invalid units in s come out as replacement characters, matching display.
func Encoded(s *unistr.OwnedString, e Encoding) ([]byte, error) {
	return EncodeBytes(s.String(), e)
}
