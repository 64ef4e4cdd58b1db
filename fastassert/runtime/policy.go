package runtime

// PanicPolicy decides what happens after a recovered panic has been recorded.
type PanicPolicy int

const (
	// KeepRunning swallows the panic after logging and recording it.
	KeepRunning PanicPolicy = iota
	// CrashProcess re-panics with the original value after recording it.
	CrashProcess
)

// String returns the string representation of a PanicPolicy.
func (p PanicPolicy) String() string {
	switch p {
	case KeepRunning:
		return "KeepRunning"
	case CrashProcess:
		return "CrashProcess"
	default:
		return "Unknown"
	}
}
