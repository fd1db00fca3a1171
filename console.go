package picolog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
)

// Per-level colors for console output. Trace is deliberately uncolored.
var levelColors = map[Level]*color.Color{
	Always:   color.New(color.FgBlue),
	Critical: color.New(color.FgMagenta),
	Error:    color.New(color.FgRed),
	Warning:  color.New(color.FgYellow),
	Info:     color.New(color.FgGreen),
	Debug:    color.New(color.FgWhite),
}

// consoleOut is where the default console sink writes. color.Output wraps
// stdout with platform color support and tty detection.
var consoleOut io.Writer = color.Output

// defaultConsole is the sink Init installs. It is a single package-level
// instance so that repeated Init calls re-subscribe the same identity
// instead of leaking table slots.
var defaultConsole = NewSink("console", func(level Level, msg []byte) {
	consoleLine(consoleOut, level, msg)
})

// SetOutput redirects the default console sink to w. The default is
// color.Output (stdout). w must not be nil.
func SetOutput(w io.Writer) {
	if w == nil {
		panic("picolog: SetOutput called with a nil io.Writer")
	}
	consoleOut = w
}

// Output returns the default console sink's current destination.
func Output() io.Writer {
	return consoleOut
}

// NewConsoleSink creates a console-formatting sink writing to w.
//
// Each delivery produces one line of the form
//
//	[LEVEL] 15:04:05 message
//
// with the level tag colored by severity. Colors follow the fatih/color
// globals, so they are disabled automatically for non-terminals and under
// NO_COLOR. Timestamps come from the process clock (xclock), which tests
// can freeze.
//
// Init installs a console sink like this one on the package default writer;
// NewConsoleSink exists for hosts that want a second console (a UART, a
// debug probe) alongside it.
func NewConsoleSink(w io.Writer) *Sink {
	return NewSink("console", func(level Level, msg []byte) {
		consoleLine(w, level, msg)
	})
}

func consoleLine(w io.Writer, level Level, msg []byte) {
	stamp := xclock.Now().Format("15:04:05")
	if c, ok := levelColors[level]; ok {
		c.Fprintf(w, "[%s] %s %s\n", level, stamp, msg) //nolint:errcheck // console writes are best-effort
		return
	}
	fmt.Fprintf(w, "[%s] %s %s\n", level, stamp, msg)
}
