package runtime

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
	"github.com/LerianStudio/lib-fastassert/fastassert/internal/nilcheck"
)

// PanicMetrics counts recovered panics through OpenTelemetry.
type PanicMetrics struct {
	counter metric.Int64Counter
}

var (
	panicMetricsInstance *PanicMetrics
	panicMetricsMu       sync.RWMutex
)

// InitPanicMetrics creates the panic_recovered_total counter on meter.
// It is safe to call multiple times; subsequent calls are no-ops.
func InitPanicMetrics(meter metric.Meter) error {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	if nilcheck.Interface(meter) || panicMetricsInstance != nil {
		return nil
	}

	counter, err := meter.Int64Counter(
		constant.MetricPanicRecoveredTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of recovered panics"),
	)
	if err != nil {
		return fmt.Errorf("failed to create panic metric counter: %w", err)
	}

	panicMetricsInstance = &PanicMetrics{counter: counter}

	return nil
}

// GetPanicMetrics returns the singleton PanicMetrics instance.
// Returns nil if InitPanicMetrics has not been called.
func GetPanicMetrics() *PanicMetrics {
	panicMetricsMu.RLock()
	defer panicMetricsMu.RUnlock()

	return panicMetricsInstance
}

// ResetPanicMetrics clears the panic metrics singleton (useful for tests).
func ResetPanicMetrics() {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	panicMetricsInstance = nil
}

// RecordPanicRecovered increments panic_recovered_total.
// If metrics are not initialized, this is a no-op.
func (pm *PanicMetrics) RecordPanicRecovered(ctx context.Context, component, goroutineName, kind string) {
	if pm == nil || pm.counter == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	pm.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", constant.SanitizeMetricLabel(component)),
		attribute.String("goroutine_name", constant.SanitizeMetricLabel(goroutineName)),
		attribute.String("panic_type", kind),
	))
}

func recordPanicMetric(ctx context.Context, panicValue any, component, goroutineName string) {
	GetPanicMetrics().RecordPanicRecovered(ctx, component, goroutineName, panicType(panicValue))
}
