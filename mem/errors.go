package mem

import "errors"

var (
	// ErrEmptyAllocation indicates a zero-byte allocation request. It
	// is rejected before any platform call is made.
	ErrEmptyAllocation = errors.New("mem: zero-byte allocation")

	// ErrAllocFailed indicates that the platform allocation call
	// failed (out of memory, or the platform rejected the request).
	// The platform cause is attached to the returned error.
	ErrAllocFailed = errors.New("mem: allocation failed")
)
