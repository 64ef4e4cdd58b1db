// Package constant provides shared constant values used across the library.
//
// Keep this package free of runtime behavior.
// It is used by the assertion core, the runtime recovery helpers, and the
// logging adapters to avoid duplicated literals.
package constant
