package log

import (
	"context"
	"fmt"
)

// SafeError logs err at error level with production-aware redaction.
// When production is true only the dynamic error type is logged, since
// recovered panic values and assertion messages can embed caller data.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if logger == nil || err == nil {
		return
	}

	if !logger.Enabled(LevelError) {
		return
	}

	if production {
		logger.Log(ctx, LevelError, msg, String("error_type", fmt.Sprintf("%T", err)))
		return
	}

	logger.Log(ctx, LevelError, msg, Err(err))
}
