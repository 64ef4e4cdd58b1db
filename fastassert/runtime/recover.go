package runtime

import (
	"context"
	"runtime/debug"

	"github.com/LerianStudio/lib-fastassert/fastassert/internal/nilcheck"
	"github.com/LerianStudio/lib-fastassert/fastassert/log"
)

// RecoverAndLog recovers from a panic, logs it with the stack trace, and
// continues execution. Use it in defer statements of handlers and workers.
//
// It does not record metrics or span events because it lacks a context; use
// RecoverAndLogWithContext for that.
//
//	func worker() {
//	    defer runtime.RecoverAndLog(logger, "worker")
//	    // ...
//	}
func RecoverAndLog(logger log.Logger, name string) {
	if r := recover(); r != nil {
		logPanicWithStack(context.Background(), logger, name, r, debug.Stack())
	}
}

// RecoverAndLogWithContext is like RecoverAndLog but also records metrics,
// span events and reports to the configured ErrorReporter.
func RecoverAndLogWithContext(ctx context.Context, logger log.Logger, component, name string) {
	if r := recover(); r != nil {
		handlePanic(ctx, logger, r, component, name)
	}
}

// RecoverAndCrash recovers from a panic, logs it, and re-panics with the
// original value. A failed assertion keeps its *AssertionError panic value,
// so the process still terminates with the assertion message.
func RecoverAndCrash(logger log.Logger, name string) {
	if r := recover(); r != nil {
		logPanicWithStack(context.Background(), logger, name, r, debug.Stack())
		panic(r)
	}
}

// RecoverAndCrashWithContext is like RecoverAndCrash with full observability.
func RecoverAndCrashWithContext(ctx context.Context, logger log.Logger, component, name string) {
	if r := recover(); r != nil {
		handlePanic(ctx, logger, r, component, name)
		panic(r)
	}
}

// RecoverWithPolicy recovers from a panic and handles it according to policy.
func RecoverWithPolicy(logger log.Logger, name string, policy PanicPolicy) {
	if r := recover(); r != nil {
		logPanicWithStack(context.Background(), logger, name, r, debug.Stack())

		if policy == CrashProcess {
			panic(r)
		}
	}
}

// RecoverWithPolicyAndContext is like RecoverWithPolicy with full observability.
func RecoverWithPolicyAndContext(
	ctx context.Context,
	logger log.Logger,
	component, name string,
	policy PanicPolicy,
) {
	if r := recover(); r != nil {
		handlePanic(ctx, logger, r, component, name)

		if policy == CrashProcess {
			panic(r)
		}
	}
}

// HandlePanicValue processes a panic value already recovered by another
// mechanism (an HTTP framework's recover middleware, for instance). It logs
// and records the value without calling recover itself.
func HandlePanicValue(ctx context.Context, logger log.Logger, panicValue any, component, name string) {
	if panicValue == nil {
		return
	}

	handlePanic(ctx, logger, panicValue, component, name)
}

// SafeGo runs fn in a new goroutine guarded by RecoverWithPolicy.
func SafeGo(logger log.Logger, name string, policy PanicPolicy, fn func()) {
	go func() {
		defer RecoverWithPolicy(logger, name, policy)

		fn()
	}()
}

// SafeGoWithContext runs fn in a new goroutine guarded by RecoverWithPolicyAndContext.
func SafeGoWithContext(
	ctx context.Context,
	logger log.Logger,
	component, name string,
	policy PanicPolicy,
	fn func(context.Context),
) {
	go func() {
		defer RecoverWithPolicyAndContext(ctx, logger, component, name, policy)

		fn(ctx)
	}()
}

func handlePanic(ctx context.Context, logger log.Logger, panicValue any, component, name string) {
	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()

	logPanicWithStack(ctx, logger, name, panicValue, stack)
	recordPanicMetric(ctx, panicValue, component, name)
	RecordPanicToSpanWithComponent(ctx, panicValue, stack, component, name)
	reportPanicToErrorService(ctx, panicValue, stack, component, name)
}

// logPanicWithStack logs a recovered value. Without a logger the entry goes
// to stderr through a GoLogger so recovered failures are never silent.
func logPanicWithStack(ctx context.Context, logger log.Logger, name string, panicValue any, stack []byte) {
	if nilcheck.Interface(logger) {
		logger = log.NewGoLogger(log.LevelError, nil)
	}

	msg := "panic recovered"
	if IsAssertionFailure(panicValue) {
		msg = "assertion failure recovered"
	}

	fields := []log.Field{
		log.String("source", name),
		log.String("panic_type", panicType(panicValue)),
	}

	if IsProductionMode() {
		fields = append(fields, log.String("value", redactedPanicMsg))
	} else {
		fields = append(fields,
			log.String("value", formatPanicValue(panicValue)),
			log.String("stack_trace", string(stack)),
		)
	}

	logger.Log(ctx, log.LevelError, msg, fields...)
}
