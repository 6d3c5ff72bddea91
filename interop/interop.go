// Package interop contains opt-in zero-copy helpers for moving wide-string
// buffers across the host boundary: aliasing between []uint16 and []byte,
// views over host-provided pointers, and byte-order aware UTF-16 byte-stream
// codecs. The aliasing functions rely on unsafe lifetime assumptions and are
// kept out of the core unistr package on purpose; callers own the lifetime
// of every aliased view.
package interop

import (
	"errors"
	"unsafe"
)

var (
	ErrOddLength  = errors.New("byte buffer length is not a multiple of 2")
	ErrMisaligned = errors.New("byte buffer is not 2-byte aligned")
)

// Bytes aliases units as raw bytes in native order without copying. The
// returned slice shares memory with units; it is invalid once the unit
// slice is reallocated or freed.
func Bytes(units []uint16) []byte {
	if len(units) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&units[0])), len(units)*2)
}

// Units aliases b as native-order code units without copying. b must be
// even-length and 2-byte aligned; use the codecs in this package instead
// when the byte stream may be foreign-order or unaligned.
func Units(b []byte) ([]uint16, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	if uintptr(unsafe.Pointer(&b[0]))%2 != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2), nil
}

// Slice views n code units starting at a host-provided pointer. The host
// owns the memory; the view is valid only as long as the host keeps it.
func Slice(p *uint16, n int) []uint16 {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
