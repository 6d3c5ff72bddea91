package wide

import (
	"unicode/utf16"
	"unicode/utf8"
)

func isHigh(u uint16) bool {
	return u >= 0xd800 && u <= 0xdbff
}

func isLow(u uint16) bool {
	return u >= 0xdc00 && u <= 0xdfff
}

// AppendUnits appends the UTF-16 encoding of s to dst and returns the
// extended slice. Characters outside the basic plane become surrogate pairs.
func AppendUnits(dst []uint16, s string) []uint16 {
	if n := len(s); cap(dst)-len(dst) < n {
		grown := make([]uint16, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}
	return dst
}

// AppendUTF8 appends the decoded form of units to dst and returns the
// extended slice. Every invalid unit (an unpaired surrogate) yields one
// replacement character; decoding continues past the fault.
func AppendUTF8(dst []byte, units []uint16) []byte {
	if n := len(units); cap(dst)-len(dst) < n*3 {
		grown := make([]byte, len(dst), len(dst)+n*3)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < len(units); i++ {
		r := rune(0xfffd)
		u := units[i]
		if isHigh(u) {
			if i+1 < len(units) && isLow(units[i+1]) {
				r = 0x10000 + (rune(u)-0xd800)<<10 + (rune(units[i+1]) - 0xdc00)
				i++
			}
		} else if !isLow(u) {
			r = rune(u)
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// Decode returns units decoded to a string, substituting one replacement
// character per invalid unit.
func Decode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(AppendUTF8(make([]byte, 0, len(units)*3), units))
}

// TrailingZeros counts the run of zero units at the end of the buffer.
func TrailingZeros(units []uint16) int {
	n := 0
	for i := len(units) - 1; i >= 0; i-- {
		if units[i] != 0 {
			break
		}
		n++
	}
	return n
}
