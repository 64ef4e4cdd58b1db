// Package fastassert provides always-on runtime assertions whose failure
// handling stays off the hot path.
//
// Every entry point is a one-branch function small enough for the Go inliner.
// When the condition holds nothing else runs: no formatting, no allocation, no
// call. When it does not hold, control moves into a separate //go:noinline
// handler that builds the message, notifies the optional observers and panics
// with an *AssertionError. The panic is not recovered here: unless the host
// recovers it (see the runtime package), the program prints the message on
// stderr and exits with status 2.
//
// # Call shapes
//
//	fastassert.Assert(len(batch) <= maxBatch)
//	    Fails with "assertion failed: len(batch) <= maxBatch". The condition
//	    text is read back from the caller's source file on the failure path.
//
//	fastassert.AssertWith(x < y, func() { fastassert.Failf("x (%d) should be less than y (%d)", x, y) })
//	    The closure only runs on failure, so x and y are not formatted (nor
//	    boxed into interfaces) while the assertion holds.
//
//	fastassert.Assertf(x < y, "x (%d) should be less than y (%d)", x, y)
//	    Shorter, but Go evaluates the arguments at the call and boxes them
//	    into a heap-allocated []any even when the assertion holds. Use
//	    AssertWith in hot loops or when arguments are expensive or have side
//	    effects.
//
// # Locations
//
// AssertionError.Location is always the caller's file and line. Helpers that
// wrap an assertion use the Depth variants to skip their own frames:
//
//	func mustBalance(ok bool) {
//	    fastassert.AssertDepth(1, ok) // reported at mustBalance's caller
//	}
//
// # Observers
//
// SetLogger and InitAssertionMetrics attach a log.Logger and an OpenTelemetry
// meter. Both are consulted on the failure path only and can never prevent
// termination. Stack traces are captured unless production mode is enabled
// through runtime.SetProductionMode or ENV/GO_ENV=production.
package fastassert
