package fastassert

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
	"github.com/LerianStudio/lib-fastassert/fastassert/internal/nilcheck"
	"github.com/LerianStudio/lib-fastassert/fastassert/log"
)

// syncTimeout bounds the logger flush that precedes the panic.
const syncTimeout = 2 * time.Second

var (
	failureLogger   log.Logger
	failureLoggerMu sync.RWMutex
)

// SetLogger configures the logger notified of assertion failures.
// Pass nil to disable. Call it once during startup.
func SetLogger(logger log.Logger) {
	failureLoggerMu.Lock()
	defer failureLoggerMu.Unlock()

	if nilcheck.Interface(logger) {
		logger = nil
	}

	failureLogger = logger
}

// GetLogger returns the configured failure logger, or a no-op logger when
// none is set.
//
//nolint:ireturn
func GetLogger() log.Logger {
	failureLoggerMu.RLock()
	defer failureLoggerMu.RUnlock()

	if failureLogger == nil {
		return log.NewNop()
	}

	return failureLogger
}

// AssertionMetrics counts failed assertions through OpenTelemetry.
type AssertionMetrics struct {
	counter metric.Int64Counter
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics creates the assertion_failed_total counter on meter.
// Subsequent calls are no-ops until ResetAssertionMetrics.
func InitAssertionMetrics(meter metric.Meter) error {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if nilcheck.Interface(meter) || assertionMetricsInstance != nil {
		return nil
	}

	counter, err := meter.Int64Counter(
		constant.MetricAssertionFailedTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of failed assertions"),
	)
	if err != nil {
		return fmt.Errorf("failed to create assertion metric counter: %w", err)
	}

	assertionMetricsInstance = &AssertionMetrics{counter: counter}

	return nil
}

// GetAssertionMetrics returns the singleton AssertionMetrics instance.
// Returns nil if InitAssertionMetrics has not been called.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the assertion metrics singleton (useful for tests).
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments assertion_failed_total for ae.
func (am *AssertionMetrics) RecordAssertionFailed(ctx context.Context, ae *AssertionError) {
	if am == nil || am.counter == nil || ae == nil {
		return
	}

	am.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("assertion", constant.SanitizeMetricLabel(ae.Assertion)),
		attribute.String("kind", ae.Kind.String()),
		attribute.String("function", constant.SanitizeMetricLabel(ae.Location.Function)),
	))
}

// report feeds ae to the configured observers.
func report(ae *AssertionError) {
	ctx := context.Background()

	observe(func() { GetAssertionMetrics().RecordAssertionFailed(ctx, ae) })
	observe(func() { logAssertion(ctx, ae) })
}

// observe runs one observer; a panicking observer must not replace the
// assertion failure as the panic value.
func observe(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fastassert: failure observer panicked: %v\n", r)
		}
	}()

	fn()
}

func logAssertion(ctx context.Context, ae *AssertionError) {
	logger := GetLogger()
	if !logger.Enabled(log.LevelError) {
		return
	}

	fields := make([]log.Field, 0, 7)
	fields = append(fields,
		log.String("assertion", ae.Assertion),
		log.String("kind", ae.Kind.String()),
		log.String("message", ae.Message),
		log.Stringer("location", ae.Location),
	)

	if ae.Condition != "" {
		fields = append(fields, log.String("condition", ae.Condition))
	}

	if ae.Location.Function != "" {
		fields = append(fields, log.String("function", ae.Location.Function))
	}

	if len(ae.Stack) > 0 {
		fields = append(fields, log.String("stack", string(ae.Stack)))
	}

	logger.Log(ctx, log.LevelError, "assertion failed", fields...)

	syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	// stderr-backed sinks commonly fail to fsync; nothing useful to do about it here.
	_ = logger.Sync(syncCtx)
}
