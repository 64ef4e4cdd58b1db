package constant

import "errors"

var (
	// ErrAssertionFailed is the sentinel wrapped by every assertion failure.
	// Hosts that recover panics match it with errors.Is.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrPanic is the sentinel recorded on spans for recovered panics.
	ErrPanic = errors.New("panic")
)
