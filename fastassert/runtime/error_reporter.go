package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
)

// ErrorReporter defines an interface for external error reporting services.
//
// Implementations should:
//   - Handle nil contexts gracefully
//   - Be safe for concurrent use
//   - Not panic themselves
type ErrorReporter interface {
	// CaptureException reports a recovered panic. tags carries component,
	// goroutine_name, panic_type and, outside production, stack_trace.
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global error reporter for panic reporting.
// Pass nil to disable error reporting.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the currently configured error reporter.
// Returns nil if no reporter has been configured.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	// productionMode suppresses stack traces in assertion failures and
	// redacts panic details in reports.
	productionMode   bool
	productionModeMu sync.RWMutex
)

const (
	redactedPanicMsg = "panic recovered (details redacted)"
	maxStackLen      = 4096
)

// SetProductionMode enables or disables production mode.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// IsAssertionFailure reports whether a recovered panic value is a failed assertion.
func IsAssertionFailure(panicValue any) bool {
	err, ok := panicValue.(error)

	return ok && errors.Is(err, constant.ErrAssertionFailed)
}

func panicType(panicValue any) string {
	if IsAssertionFailure(panicValue) {
		return constant.PanicTypeAssertion
	}

	return constant.PanicTypeRecovered
}

func reportPanicToErrorService(
	ctx context.Context,
	panicValue any,
	stack []byte,
	component, goroutineName string,
) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	isProduction := IsProductionMode()

	tags := map[string]string{
		"component":      component,
		"goroutine_name": goroutineName,
		"panic_type":     panicType(panicValue),
	}

	if len(stack) > 0 && !isProduction {
		tags["stack_trace"] = truncateStack(stack)
	}

	reporter.CaptureException(ctx, toPanicError(panicValue, isProduction), tags)
}

func truncateStack(stack []byte) string {
	s := string(stack)
	if len(s) > maxStackLen {
		return s[:maxStackLen] + "\n...[truncated]"
	}

	return s
}

// panicError wraps a non-error panic value as an error for reporting.
type panicError struct {
	message string
}

// Error returns the panic error message.
func (e *panicError) Error() string {
	return e.message
}

func toPanicError(panicValue any, isProduction bool) error {
	if isProduction {
		return &panicError{message: redactedPanicMsg}
	}

	if err, ok := panicValue.(error); ok {
		return err
	}

	if message, ok := panicValue.(string); ok {
		return &panicError{message: message}
	}

	return &panicError{message: "panic: " + formatPanicValue(panicValue)}
}

// formatPanicValue formats a panic value as a string.
func formatPanicValue(value any) string {
	if value == nil {
		return "<nil>"
	}

	switch val := value.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}
