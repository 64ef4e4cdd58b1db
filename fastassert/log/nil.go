package log

import "context"

// NopLogger discards every entry. It is the logger assertion failures see
// when none was configured.
type NopLogger struct{}

var nop = &NopLogger{}

// Compile-time assertion: *NopLogger implements Logger.
var _ Logger = (*NopLogger)(nil)

// NewNop returns the shared no-op logger.
//
//nolint:ireturn
func NewNop() Logger {
	return nop
}

// Log drops the entry.
func (l *NopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (l *NopLogger) With(...Field) Logger { return l }

//nolint:ireturn
func (l *NopLogger) WithGroup(string) Logger { return l }

// Enabled reports false for every level, so callers can skip building fields.
func (l *NopLogger) Enabled(Level) bool { return false }

func (l *NopLogger) Sync(context.Context) error { return nil }
