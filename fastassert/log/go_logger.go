package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Assertion messages and condition texts are caller controlled and may span lines.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of Logger.
//
// Entries are rendered on one line as `[level] msg key=value ...`. All strings
// are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	Level  Level
	fields []Field
	group  string
	out    *stdlog.Logger
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing to w. A nil w writes to os.Stderr.
func NewGoLogger(level Level, w io.Writer) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Enabled reports whether entries at level would be written.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log writes one sanitized line when level is enabled.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	l.output().Print(l.render(level, msg, fields))
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewGoLogger(LevelInfo, nil)
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)

	for _, f := range fields {
		merged = append(merged, l.qualify(f))
	}

	return &GoLogger{Level: l.Level, fields: merged, group: l.group, out: l.out}
}

// WithGroup returns a child logger whose subsequent field keys are prefixed with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return NewGoLogger(LevelInfo, nil)
	}

	group := name
	if l.group != "" {
		group = l.group + "." + name
	}

	return &GoLogger{Level: l.Level, fields: l.fields, group: group, out: l.out}
}

// Sync is a no-op: the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) output() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

func (l *GoLogger) qualify(f Field) Field {
	if l.group == "" {
		return f
	}

	return Field{Key: l.group + "." + f.Key, Value: f.Value}
}

func (l *GoLogger) render(level Level, msg string, fields []Field) string {
	var sb strings.Builder

	sb.WriteString("[")
	sb.WriteString(level.String())
	sb.WriteString("] ")
	sb.WriteString(sanitizeLogString(msg))

	write := func(f Field) {
		sb.WriteString(" ")
		sb.WriteString(sanitizeLogString(f.Key))
		sb.WriteString("=")
		sb.WriteString(sanitizeLogString(fmt.Sprint(f.Value)))
	}

	for _, f := range l.fields {
		write(f)
	}

	for _, f := range fields {
		write(l.qualify(f))
	}

	return sb.String()
}
