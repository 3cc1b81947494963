package log

// Logger receives bridge events.
// Pass nil or NoopLogger to disable event capture.
type Logger interface {
	// Log records an event. It runs on the caller's execution context,
	// which may be the host's, so it must return quickly.
	Log(event Event)
}

// NoopLogger discards all events. Usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
