package ports

// Logger receives diagnostics about rejected operations. Diagnostics share
// the output stream with normal narration.
type Logger interface {
	// Infof records an accepted change.
	Infof(format string, args ...any)

	// Warnf records a rejected operation. The program keeps running.
	Warnf(format string, args ...any)
}
