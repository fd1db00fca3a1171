//go:build picolog_off

package picolog

// Built with the picolog_off tag, the package-level facade compiles to
// no-ops: no formatting, no delivery, no table mutation. Logger instances
// constructed explicitly are unaffected.

var std = New()

// Default returns the (inert) Logger behind the package-level functions.
func Default() *Logger {
	return std
}

// Init does nothing when built with picolog_off.
func Init(Level) {}

// Subscribe does nothing and reports success when built with picolog_off.
func Subscribe(*Sink, Level) error { return nil }

// Unsubscribe does nothing and reports success when built with picolog_off.
func Unsubscribe(*Sink) error { return nil }

// Emit does nothing when built with picolog_off.
func Emit(Level, string, ...any) {}

// Tracef does nothing when built with picolog_off.
func Tracef(string, ...any) {}

// Debugf does nothing when built with picolog_off.
func Debugf(string, ...any) {}

// Infof does nothing when built with picolog_off.
func Infof(string, ...any) {}

// Warningf does nothing when built with picolog_off.
func Warningf(string, ...any) {}

// Errorf does nothing when built with picolog_off.
func Errorf(string, ...any) {}

// Criticalf does nothing when built with picolog_off.
func Criticalf(string, ...any) {}

// Alwaysf does nothing when built with picolog_off.
func Alwaysf(string, ...any) {}
