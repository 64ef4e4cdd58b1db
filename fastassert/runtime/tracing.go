package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-fastassert/fastassert/constants"
)

// ErrPanic is the error recorded on spans for recovered panics.
var ErrPanic = constant.ErrPanic

// PanicSpanEventName is the span event name used for recovered panics.
const PanicSpanEventName = constant.EventPanicRecovered

// RecordPanicToSpan records a recovered panic on the span carried by ctx.
func RecordPanicToSpan(ctx context.Context, panicValue any, stack []byte, goroutineName string) {
	RecordPanicToSpanWithComponent(ctx, panicValue, stack, "", goroutineName)
}

// RecordPanicToSpanWithComponent is RecordPanicToSpan with a component label.
// Panic values and stacks are omitted in production mode.
func RecordPanicToSpanWithComponent(
	ctx context.Context,
	panicValue any,
	stack []byte,
	component, goroutineName string,
) {
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	isProduction := IsProductionMode()

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrPrefixPanic+"goroutine_name", goroutineName),
		attribute.String(constant.AttrPrefixPanic+"type", panicType(panicValue)),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrPrefixPanic+"component", component))
	}

	value := redactedPanicMsg
	if !isProduction {
		value = formatPanicValue(panicValue)

		if len(stack) > 0 {
			attrs = append(attrs, attribute.String(constant.AttrPrefixPanic+"stack", truncateStack(stack)))
		}
	}

	attrs = append(attrs, attribute.String(constant.AttrPrefixPanic+"value", value))

	span.AddEvent(PanicSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrPanic, value))
	span.SetStatus(codes.Error, "panic recovered in "+goroutineName)
}
