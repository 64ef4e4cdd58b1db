//go:build unit

package runtime

import (
	"context"
	"fmt"
	"sync"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
	"github.com/LerianStudio/lib-fastassert/fastassert/log"
)

// testLogger captures log calls. It is shared across all runtime test files.
type testLogger struct {
	mu      sync.Mutex
	entries []testEntry
	logged  chan struct{}
}

type testEntry struct {
	msg    string
	fields map[string]any
}

func newTestLogger() *testLogger {
	return &testLogger{logged: make(chan struct{}, 1)}
}

func (logger *testLogger) Log(_ context.Context, _ log.Level, msg string, fields ...log.Field) {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}

	logger.entries = append(logger.entries, testEntry{msg: msg, fields: m})

	select {
	case logger.logged <- struct{}{}:
	default:
	}
}

func (logger *testLogger) With(...log.Field) log.Logger { return logger }
func (logger *testLogger) WithGroup(string) log.Logger  { return logger }
func (logger *testLogger) Enabled(log.Level) bool       { return true }
func (logger *testLogger) Sync(context.Context) error   { return nil }

func (logger *testLogger) all() []testEntry {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	return append([]testEntry(nil), logger.entries...)
}

// fakeAssertion stands in for *fastassert.AssertionError, which this package
// cannot import.
type fakeAssertion struct {
	msg string
}

func (f *fakeAssertion) Error() string { return f.msg }
func (f *fakeAssertion) Unwrap() error { return constant.ErrAssertionFailed }

type captureReporter struct {
	mu    sync.Mutex
	err   error
	tags  map[string]string
	calls int
}

func (r *captureReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
	r.tags = tags
	r.calls++
}

func (r *captureReporter) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fmt.Sprintf("calls=%d err=%v", r.calls, r.err)
}
