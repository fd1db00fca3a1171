//go:build !picolog_off

package picolog

// std is the process-wide facility the package-level functions operate on.
// It is deliberately unlocked: the facility targets single-threaded hosts,
// and hosts that need more build their own Logger with WithLocking.
var std = New()

// Default returns the Logger behind the package-level functions.
func Default() *Logger {
	return std
}

// Init resets the default Logger and installs the default console sink at
// threshold. Calling Init again clears every prior subscription, including
// ones added by other packages: treat re-init as a full facility reset, not
// an additive operation.
func Init(threshold Level) {
	std.Init(threshold)
}

// Subscribe registers s on the default Logger. See Logger.Subscribe.
func Subscribe(s *Sink, threshold Level) error {
	return std.Subscribe(s, threshold)
}

// Unsubscribe removes s from the default Logger. See Logger.Unsubscribe.
func Unsubscribe(s *Sink) error {
	return std.Unsubscribe(s)
}

// Emit formats and delivers a message on the default Logger.
// See Logger.Emit.
func Emit(severity Level, format string, args ...any) {
	std.Emit(severity, format, args...)
}

// Tracef emits at Trace on the default Logger.
func Tracef(format string, args ...any) { std.Emit(Trace, format, args...) }

// Debugf emits at Debug on the default Logger.
func Debugf(format string, args ...any) { std.Emit(Debug, format, args...) }

// Infof emits at Info on the default Logger.
func Infof(format string, args ...any) { std.Emit(Info, format, args...) }

// Warningf emits at Warning on the default Logger.
func Warningf(format string, args ...any) { std.Emit(Warning, format, args...) }

// Errorf emits at Error on the default Logger.
func Errorf(format string, args ...any) { std.Emit(Error, format, args...) }

// Criticalf emits at Critical on the default Logger.
func Criticalf(format string, args ...any) { std.Emit(Critical, format, args...) }

// Alwaysf emits at Always on the default Logger.
func Alwaysf(format string, args ...any) { std.Emit(Always, format, args...) }
