//go:build windows

package interop

import (
	"golang.org/x/sys/windows"

	"github.com/rawbytedev/unistr"
)

// NTString views s as a windows.NTUnicodeString sharing its buffer. The
// view is valid only while s is alive and not mutated; take it fresh after
// any operation that may reallocate.
func NTString(s *unistr.OwnedString) windows.NTUnicodeString {
	d := s.Descriptor()
	return windows.NTUnicodeString{
		Length:        d.Length,
		MaximumLength: d.MaximumLength,
		Buffer:        d.Buffer,
	}
}

// FromNT copies a host NTUnicodeString's physical buffer into a new
// OwnedString. The descriptor is recomputed from the copied contents.
func FromNT(ns *windows.NTUnicodeString) (*unistr.OwnedString, error) {
	units := make([]uint16, ns.MaximumLength/2)
	copy(units, Slice(ns.Buffer, len(units)))
	return unistr.FromUnits(units)
}
