package fastassert

import (
	"fmt"
	"os"
	"reflect"
	goruntime "runtime"
	"runtime/debug"
	"strings"

	"github.com/LerianStudio/lib-fastassert/fastassert/runtime"
)

const (
	defaultPrefix = "assertion failed: "
	// unknownCondition replaces the condition text when the caller's source
	// cannot be read, e.g. binaries built with -trimpath.
	unknownCondition = "<condition unavailable>"

	msgComputationReturned = defaultPrefix + "message computation returned without terminating"
)

// Everything in this file runs only after a check failed. Handlers are kept
// out of line so callers carry nothing but a call on the unlikely branch.

//go:noinline
func failDefault(skip int, assertion string, arg int) {
	loc := callerLocation(skip)
	cond := resolveCondition(&loc, assertion, arg)

	terminate(&AssertionError{
		Kind:      KindDefault,
		Assertion: assertion,
		Message:   defaultPrefix + cond,
		Condition: cond,
		Location:  loc,
	})
}

// failDefaultDepth reads the condition at the AssertDepth call and reports
// the location depth frames above it.
//
//go:noinline
func failDefaultDepth(depth int) {
	site := callerLocation(callerSkip)
	cond := resolveCondition(&site, "AssertDepth", 1)

	loc := site
	if depth > 0 {
		loc = callerLocation(callerSkip + depth)
	}

	terminate(&AssertionError{
		Kind:      KindDefault,
		Assertion: "AssertDepth",
		Message:   defaultPrefix + cond,
		Condition: cond,
		Location:  loc,
	})
}

//go:noinline
func failCustom(skip int, compute func()) {
	site := callerLocation(skip)

	if compute != nil {
		runCompute(site, compute)
	}

	terminate(&AssertionError{
		Kind:      KindCustom,
		Assertion: "AssertWith",
		Message:   msgComputationReturned,
		Location:  site,
	})
}

// runComputeFunc is the symbol terminate looks for to detect a failure raised
// inside a deferred message computation.
var runComputeFunc = reflect.TypeOf(Location{}).PkgPath() + ".runCompute"

// runCompute runs compute. A Fail or Failf raised inside it is relocated to
// site, the AssertWith call, and reported from here.
func runCompute(site Location, compute func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if ae, ok := r.(*AssertionError); ok && !ae.reported {
			if ae.Assertion == "Fail" || ae.Assertion == "Failf" {
				ae.Location = site
			}

			ae.reported = true
			report(ae)
		}

		panic(r)
	}()

	compute()
}

//go:noinline
func failFormat(skip int, assertion, format string, args []any) {
	terminate(&AssertionError{
		Kind:      KindCustom,
		Assertion: assertion,
		Message:   fmt.Sprintf(format, args...),
		Location:  callerLocation(skip),
	})
}

//go:noinline
func failMessage(skip int, assertion, msg string) {
	terminate(&AssertionError{
		Kind:      KindCustom,
		Assertion: assertion,
		Message:   msg,
		Location:  callerLocation(skip),
	})
}

//go:noinline
func failError(skip int, err error) {
	loc := callerLocation(skip)
	cond := resolveCondition(&loc, "NoError", 0)

	terminate(&AssertionError{
		Kind:      KindDefault,
		Assertion: "NoError",
		Message:   defaultPrefix + "unexpected error: " + err.Error(),
		Condition: cond,
		Location:  loc,
	})
}

//go:noinline
func failNil(skip int) {
	loc := callerLocation(skip)
	cond := resolveCondition(&loc, "NotNil", 0)

	terminate(&AssertionError{
		Kind:      KindDefault,
		Assertion: "NotNil",
		Message:   defaultPrefix + cond + " must not be nil",
		Condition: cond,
		Location:  loc,
	})
}

// terminate notifies observers and panics with ae. It never returns.
func terminate(ae *AssertionError) {
	if includeStack() {
		ae.Stack = debug.Stack()
	}

	// runCompute reports once the final location is known.
	if !insideCompute() {
		ae.reported = true
		report(ae)
	}

	panic(ae)
}

func insideCompute() bool {
	var pcs [64]uintptr

	n := goruntime.Callers(3, pcs[:])
	frames := goruntime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.Function == runComputeFunc {
			return true
		}

		if !more {
			return false
		}
	}
}

// callerLocation resolves the frame skip levels above the function calling it.
// Inlined frames are expanded, so inlined entry points still count as one frame.
func callerLocation(skip int) Location {
	var pcs [8]uintptr

	// +2: runtime.Callers itself and callerLocation.
	n := goruntime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Location{}
	}

	frame, _ := goruntime.CallersFrames(pcs[:n]).Next()

	return Location{
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
	}
}

// resolveCondition returns the condition source text for the call at loc and
// fills in loc.Column when the source could be parsed.
func resolveCondition(loc *Location, callee string, arg int) string {
	if loc.IsZero() {
		return unknownCondition
	}

	text, column, ok := conditionText(loc.File, loc.Line, callee, arg)
	if !ok {
		return unknownCondition
	}

	loc.Column = column

	return text
}

func includeStack() bool {
	// Primary check: production mode set explicitly at startup.
	if runtime.IsProductionMode() {
		return false
	}

	// Fallback for processes that never configured the runtime package.
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}
