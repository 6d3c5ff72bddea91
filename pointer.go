package unistr

// Raw pointer forms for host interop. These hand the exclusivity discipline
// to the caller: a returned pointer is valid only while the OwnedString is
// alive and not mutated, and Go cannot enforce that. Prefer the scoped
// WithPtr/WithDescriptor forms, which at least bound the exposure to a call.

// Ptr ensures termination and returns a read-only view pointer to the first
// code unit. Zero-copy; the terminator side effect may grow MaximumLength
// by 2 without touching Length. The caller must not write through it.
func (s *OwnedString) Ptr() (*uint16, error) {
	if _, err := s.EnsureTerminated(); err != nil {
		return nil, err
	}
	return &s.buf[0], nil
}

// MutPtr is the mutable form of Ptr. The caller must not resize the buffer
// through unrelated channels while holding it, and any content written
// through it leaves the descriptor stale until Recompute.
func (s *OwnedString) MutPtr() (*uint16, error) {
	if _, err := s.EnsureTerminated(); err != nil {
		return nil, err
	}
	return &s.buf[0], nil
}

// WithPtr ensures termination and runs fn with the buffer pointer. The
// pointer must not escape fn; the OwnedString must not be mutated inside fn.
func (s *OwnedString) WithPtr(fn func(*uint16) error) error {
	p, err := s.Ptr()
	if err != nil {
		return err
	}
	return fn(p)
}

// WithDescriptor runs fn with a pointer to the live descriptor, for host
// calls that take the record by address. No termination or recompute side
// effect; the caller must have ensured the invariants already hold. The
// pointer must not escape fn.
func (s *OwnedString) WithDescriptor(fn func(*Descriptor) error) error {
	return fn(&s.desc)
}
