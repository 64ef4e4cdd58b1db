package fastassert

import "github.com/LerianStudio/lib-fastassert/fastassert/internal/nilcheck"

// callerSkip is the number of frames between a failure handler and the user
// code: the handler's caller (an entry point below) and then the user.
const callerSkip = 2

// Keep the bodies below to a single branch and one call: they must stay
// within the inliner budget so the check is emitted at the call site.

// Assert terminates with "assertion failed: <condition source>" if cond is false.
func Assert(cond bool) {
	if !cond {
		failDefault(callerSkip, "Assert", 0)
	}
}

// AssertDepth is Assert for wrappers: depth extra frames are skipped when
// resolving the location. The condition text is always the one written in
// the AssertDepth call.
func AssertDepth(depth int, cond bool) {
	if !cond {
		failDefaultDepth(depth)
	}
}

// AssertWith calls compute if cond is false. compute runs exactly once and is
// expected to terminate, normally through Fail or Failf, which then report the
// AssertWith call as location:
//
//	fastassert.AssertWith(n <= len(buf), func() { fastassert.Failf("short buffer: %d > %d", n, len(buf)) })
//
// Values captured by compute are only formatted on failure. If compute
// returns, AssertWith terminates on its behalf.
func AssertWith(cond bool, compute func()) {
	if !cond {
		failCustom(callerSkip, compute)
	}
}

// AssertWithDepth is AssertWith for wrappers; see AssertDepth.
func AssertWithDepth(depth int, cond bool, compute func()) {
	if !cond {
		failCustom(callerSkip+depth, compute)
	}
}

// Assertf terminates with fmt.Sprintf(format, args...) if cond is false.
// Formatting happens on failure only, but args are evaluated and boxed at
// every call: the variadic slice escapes, so a passing Assertf allocates.
// Use AssertWith in hot loops.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		failFormat(callerSkip, "Assertf", format, args)
	}
}

// AssertfDepth is Assertf for wrappers; see AssertDepth.
func AssertfDepth(depth int, cond bool, format string, args ...any) {
	if !cond {
		failFormat(callerSkip+depth, "Assertf", format, args)
	}
}

// NoError terminates with "assertion failed: unexpected error: <err>" if err is not nil.
func NoError(err error) {
	if err != nil {
		failError(callerSkip, err)
	}
}

// NotNil terminates with "assertion failed: <expr> must not be nil" if v is
// nil, including typed nils such as a nil *T stored in an interface.
func NotNil(v any) {
	if nilcheck.Interface(v) {
		failNil(callerSkip)
	}
}

// Fail terminates with msg, located at its caller. It is meant to end the
// closure passed to AssertWith but works anywhere a path must be unreachable.
func Fail(msg string) {
	failMessage(callerSkip, "Fail", msg)
}

// FailDepth is Fail for wrappers; see AssertDepth.
func FailDepth(depth int, msg string) {
	failMessage(callerSkip+depth, "Fail", msg)
}

// Failf terminates with fmt.Sprintf(format, args...), located at its caller.
func Failf(format string, args ...any) {
	failFormat(callerSkip, "Failf", format, args)
}
