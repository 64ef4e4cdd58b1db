//go:build unit

package log

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	level   Level
	entries []captured
}

type captured struct {
	level  Level
	msg    string
	fields []Field
}

func (c *captureLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	c.entries = append(c.entries, captured{level: level, msg: msg, fields: fields})
}

func (c *captureLogger) With(...Field) Logger     { return c }
func (c *captureLogger) WithGroup(string) Logger  { return c }
func (c *captureLogger) Enabled(level Level) bool { return c.level >= level }
func (c *captureLogger) Sync(context.Context) error {
	return nil
}

type locationStub struct{}

func (locationStub) String() string { return "main.go:12:2" }

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{name: "error", input: "error", expected: LevelError},
		{name: "warn", input: "warn", expected: LevelWarn},
		{name: "warning alias", input: "warning", expected: LevelWarn},
		{name: "info", input: "info", expected: LevelInfo},
		{name: "debug", input: "debug", expected: LevelDebug},
		{name: "uppercase", input: "INFO", expected: LevelInfo},
		{name: "surrounding spaces", input: "  debug ", expected: LevelDebug},
		{name: "invalid", input: "fatal", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid Level")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "a", Value: 1.5}, Any("a", 1.5))
	assert.Equal(t, Field{Key: "error", Value: err}, Err(err))
	assert.Equal(t, Field{Key: "location", Value: "main.go:12:2"}, Stringer("location", locationStub{}))
	assert.Equal(t, Field{Key: "location", Value: "<nil>"}, Stringer("location", nil))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	})
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
	assert.Same(t, logger, logger.WithGroup("g"))
	assert.NoError(t, logger.Sync(context.Background()))
}

func TestGoLoggerWritesEnabledLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewGoLogger(LevelWarn, &buf)

	logger.Log(context.Background(), LevelError, "assertion failed", String("condition", "100 < 0"))
	logger.Log(context.Background(), LevelInfo, "dropped")

	out := buf.String()
	assert.Contains(t, out, "[error] assertion failed condition=100 < 0")
	assert.NotContains(t, out, "dropped")
}

func TestGoLoggerSanitizesControlCharacters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewGoLogger(LevelDebug, &buf)

	logger.Log(context.Background(), LevelError, "line1\nline2", String("message", "a\tb\r"))

	out := buf.String()
	assert.Contains(t, out, `line1\nline2`)
	assert.Contains(t, out, `message=a\tb\r`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestGoLoggerWithAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	parent := NewGoLogger(LevelDebug, &buf)
	child := parent.With(String("component", "ledger")).WithGroup("assertion").With(String("kind", "default"))

	child.Log(context.Background(), LevelError, "failed", Int("line", 12))
	parent.Log(context.Background(), LevelError, "parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "component=ledger assertion.kind=default assertion.line=12")
	assert.NotContains(t, string(lines[1]), "component=")
}

func TestGoLoggerNilReceiver(t *testing.T) {
	t.Parallel()

	var logger *GoLogger

	assert.False(t, logger.Enabled(LevelError))
	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "ignored")
	})
	assert.NotNil(t, logger.With())
	assert.NotNil(t, logger.WithGroup("g"))
	assert.NoError(t, logger.Sync(context.Background()))
}

func TestSafeError(t *testing.T) {
	t.Parallel()

	err := errors.New("account_id=42 overdrawn")

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { SafeError(nil, context.Background(), "msg", err, false) })
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{level: LevelDebug}
		SafeError(logger, context.Background(), "msg", nil, false)
		assert.Empty(t, logger.entries)
	})

	t.Run("error level at minimum verbosity", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{level: LevelError}
		SafeError(logger, context.Background(), "msg", err, false)
		require.Len(t, logger.entries, 1)
		assert.Equal(t, LevelError, logger.entries[0].level)
	})

	t.Run("disabled logger", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { SafeError(NewNop(), context.Background(), "msg", err, false) })
	})

	t.Run("development keeps error", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{level: LevelDebug}
		SafeError(logger, context.Background(), "msg", err, false)
		require.Len(t, logger.entries, 1)
		assert.Equal(t, Err(err), logger.entries[0].fields[0])
	})

	t.Run("production keeps only type", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{level: LevelDebug}
		SafeError(logger, context.Background(), "msg", err, true)
		require.Len(t, logger.entries, 1)
		assert.Equal(t, String("error_type", "*errors.errorString"), logger.entries[0].fields[0])
	})
}
