// Package unistr provides owned UTF-16 string buffers carrying a
// (Length, MaximumLength, Buffer) descriptor compatible with host APIs that
// consume counted wide strings. The descriptor's byte lengths and buffer
// pointer are kept consistent with the owned storage by the package; callers
// that mutate the storage directly must call Recompute before handing the
// descriptor out.
package unistr

import (
	"errors"
	"slices"

	"github.com/rawbytedev/unistr/internal/wide"
)

var (
	// ErrCapacityExceeded reports a buffer that no longer fits the
	// descriptor's 16-bit byte lengths. Descriptor fields are left
	// unchanged when an operation fails with it.
	ErrCapacityExceeded = errors.New("capacity exceeds 16-bit descriptor range")
)

// MaxUnits is the largest code-unit count a descriptor can describe:
// byte lengths are uint16 and each unit is two bytes.
const MaxUnits = 32767

// Descriptor is the bit-exact host record: logical byte length, physical
// byte capacity, and a pointer to the first code unit of the backing array.
// Both lengths count bytes, not units. The pointer is a non-owning view; it
// is refreshed by the package whenever the owned buffer reallocates and is
// nil for an empty buffer.
type Descriptor struct {
	Length        uint16
	MaximumLength uint16
	Buffer        *uint16
}

// OwnedString owns a growable UTF-16 buffer and the descriptor describing
// it. The zero value is an empty string. Not safe for concurrent use; the
// buffer is released with the value, exactly once, by the garbage collector.
type OwnedString struct {
	desc Descriptor
	buf  []uint16
}

// FromUnits takes ownership of units, no copy, and computes the descriptor.
// The buffer may contain embedded or trailing zero units; the logical length
// excludes only the trailing run.
func FromUnits(units []uint16) (*OwnedString, error) {
	s := &OwnedString{buf: units}
	if err := s.Recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

// FromString encodes text to UTF-16 code units, surrogate pairs included,
// and builds an OwnedString from them. Encoding itself cannot fail; only a
// text longer than MaxUnits units is rejected.
func FromString(text string) (*OwnedString, error) {
	return FromUnits(wide.AppendUnits(nil, text))
}

// Recompute restores the descriptor from the buffer's real contents:
// MaximumLength is the full physical byte size, Length excludes the trailing
// zero-unit run, and the buffer pointer is re-derived. Must be called after
// any direct mutation through Units.
func (s *OwnedString) Recompute() error {
	if len(s.buf) > MaxUnits {
		return ErrCapacityExceeded
	}
	maximum := uint16(len(s.buf) * 2)
	k := wide.TrailingZeros(s.buf)
	s.desc.Length = maximum - uint16(k*2)
	s.desc.MaximumLength = maximum
	s.refreshPointer()
	return nil
}

// IsTerminated reports whether the buffer ends in a zero unit. Empty
// buffers are not terminated.
func (s *OwnedString) IsTerminated() bool {
	return len(s.buf) > 0 && s.buf[len(s.buf)-1] == 0
}

// EnsureTerminated makes the buffer end in a zero unit, appending one if
// needed, and returns whether it already did. Post-condition of the append:
// MaximumLength grows by 2 while Length stays at the pre-termination
// content — the terminator is not meaningful text. External APIs that scan
// for the zero unit rely on exactly this asymmetry.
func (s *OwnedString) EnsureTerminated() (bool, error) {
	if s.IsTerminated() {
		return true, nil
	}
	if len(s.buf)+1 > MaxUnits {
		return false, ErrCapacityExceeded
	}
	s.buf = append(s.buf, 0)
	s.desc.MaximumLength += 2
	s.refreshPointer()
	return false, nil
}

// Append concatenates the logical slice of other onto s. The left operand
// keeps its full physical buffer: a terminator appended earlier is not
// stripped and ends up embedded between the operands, after which Recompute
// reports a logical length that stops at the embedded zero. Callers that
// want textual concatenation must append before terminating.
func (s *OwnedString) Append(other *OwnedString) error {
	rhs := other.logical()
	if len(s.buf)+len(rhs) > MaxUnits {
		return ErrCapacityExceeded
	}
	s.buf = append(s.buf, rhs...)
	return s.Recompute()
}

// AppendString converts text to an OwnedString and appends it.
func (s *OwnedString) AppendString(text string) error {
	other, err := FromString(text)
	if err != nil {
		return err
	}
	return s.Append(other)
}

// Equal compares the logical slices of both operands unit by unit.
// Case-sensitive, no normalization; differing trailing-zero padding does
// not break equality.
func (s *OwnedString) Equal(other *OwnedString) bool {
	return slices.Equal(s.logical(), other.logical())
}

// String decodes the logical slice, substituting one replacement character
// per invalid unit. The physical padding past Length is never decoded.
func (s *OwnedString) String() string {
	return wide.Decode(s.logical())
}

// Units exposes the owned buffer for direct mutation. This is an unsafe
// escape hatch: any change through it leaves Length and MaximumLength stale
// until Recompute is called.
func (s *OwnedString) Units() []uint16 {
	return s.buf
}

// SetUnits replaces the owned buffer, taking ownership of units, and
// recomputes the descriptor.
func (s *OwnedString) SetUnits(units []uint16) error {
	old := s.buf
	s.buf = units
	if err := s.Recompute(); err != nil {
		s.buf = old
		return err
	}
	return nil
}

// Descriptor returns the current descriptor triple as of the call. It does
// not recompute; the caller must have kept the invariants intact.
func (s *OwnedString) Descriptor() Descriptor {
	return s.desc
}

// Len returns the logical byte length.
func (s *OwnedString) Len() int {
	return int(s.desc.Length)
}

// Cap returns the physical byte capacity.
func (s *OwnedString) Cap() int {
	return int(s.desc.MaximumLength)
}

func (s *OwnedString) logical() []uint16 {
	return s.buf[:s.desc.Length/2]
}

func (s *OwnedString) refreshPointer() {
	if len(s.buf) == 0 {
		s.desc.Buffer = nil
		return
	}
	s.desc.Buffer = &s.buf[0]
}
