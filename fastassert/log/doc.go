// Package log defines the logging interface and typed logging fields used by
// the assertion core and the runtime recovery helpers.
//
// Adapters (such as the zap package) implement Logger so applications can plug
// their own backend in. GoLogger is a dependency-free fallback on top of the
// standard library logger.
package log
