package fastassert

import (
	"errors"
	"strconv"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
)

// ErrAssertionFailed is the sentinel wrapped by every *AssertionError.
var ErrAssertionFailed = constant.ErrAssertionFailed

// Kind tells which failure handler produced an AssertionError.
type Kind uint8

const (
	// KindDefault failures carry the condition source text as message.
	KindDefault Kind = iota
	// KindCustom failures carry a caller-formatted message.
	KindCustom
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Location is a source position of an assertion call site.
type Location struct {
	File     string
	Line     int
	Column   int // 0 when the source file could not be parsed
	Function string
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// String formats the location as file:line[:column].
func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}

	s := l.File + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}

	return s
}

// AssertionError is the panic value of a failed assertion.
type AssertionError struct {
	Kind Kind
	// Assertion is the entry point that failed (Assert, AssertWith, NoError...).
	Assertion string
	// Message is the exact failure text: "assertion failed: <condition>" for
	// KindDefault, the formatted caller text for KindCustom.
	Message string
	// Condition is the condition source text, empty when not applicable or unavailable.
	Condition string
	Location  Location
	// Stack is nil in production mode.
	Stack []byte

	reported bool
}

// Error returns the message followed by the call site, when known.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}

	if e.Location.IsZero() {
		return e.Message
	}

	return e.Message + "\n\tat " + e.Location.String()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// AsAssertionError extracts an *AssertionError from a recovered panic value.
//
//	defer func() {
//	    if ae, ok := fastassert.AsAssertionError(recover()); ok {
//	        ...
//	    }
//	}()
func AsAssertionError(recovered any) (*AssertionError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}

	var ae *AssertionError
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}

	return nil, false
}
