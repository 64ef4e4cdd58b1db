//go:build unit

package fastassert_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-fastassert/fastassert"
)

// captureFailure runs fn and returns the *AssertionError it panicked with.
func captureFailure(t *testing.T, fn func()) (ae *fastassert.AssertionError) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an assertion failure")

		var ok bool
		ae, ok = fastassert.AsAssertionError(r)
		require.True(t, ok, "panic value %T is not an *AssertionError", r)
	}()

	fn()

	return nil
}

// thisLine returns the line it is called from.
func thisLine() int {
	_, _, line, _ := runtime.Caller(1)

	return line
}
