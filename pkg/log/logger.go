package log

// Logger is the interface tools implement to receive codec events.
// Pass nil or NoopLogger to disable capture.
type Logger interface {
	// Log records a codec event. Implementations must be thread-safe
	// and should return quickly; blocking stalls the caller.
	Log(event Event)
}

// NoopLogger discards all events. Usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
