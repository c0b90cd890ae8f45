// Package speech implements the text normalization pipeline (grapheme
// run-collapse, symbol/emoji expansion) and dispatches the result to a
// pluggable speech driver.
package speech

// Driver is the capability set a speech synthesizer backend exposes.
// Implementations may be an in-process engine, a spawned child process
// speaking JSON-RPC over stdio, or a test fake.
type Driver interface {
	Speak(text string, interrupt bool) error
	Stop() error
	GetRate() float32
	SetRate(rate float32) error
}

// DriverError wraps a failure originating from a Driver implementation.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string {
	return "speech driver " + e.Op + ": " + e.Err.Error()
}

func (e *DriverError) Unwrap() error {
	return e.Err
}
