// Package runtime holds the host-side policy for panics, assertion failures
// included: production mode, recovery helpers with logging, span events,
// metrics and external error reporting.
//
// The assertion core never recovers its own failures. Services that prefer to
// keep a worker alive after a failed assertion (or to record it before
// crashing) install one of the Recover* helpers or launch work with SafeGo.
package runtime
