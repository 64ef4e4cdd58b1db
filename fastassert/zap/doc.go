// Package zap adapts go.uber.org/zap to the log.Logger interface.
//
// The adapter is the usual backend handed to fastassert.SetLogger and to the
// runtime recovery helpers: failures are logged as structured entries with
// trace correlation and flushed before the process terminates.
package zap
