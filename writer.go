package picolog

import (
	"fmt"
	"io"
)

// NewWriterSink creates a sink that writes one plain "[LEVEL] message" line
// to w per delivery, with no colors and no timestamp.
//
// Any io.Writer works, which makes this the building block for sinks the
// package has no dedicated constructor for: a bytes.Buffer for capture in
// tests, a net.Conn for shipping messages off-device, an os.File when the
// rotation in NewFileSink is unwanted.
//
//	conn, err := net.Dial("udp", "10.0.0.7:5140")
//	if err != nil { ... }
//	picolog.Subscribe(picolog.NewWriterSink("collector", conn), picolog.Warning)
//
// Write errors are swallowed: the dispatcher has no error channel, and a
// logging facility that logs its own failures risks recursing.
func NewWriterSink(name string, w io.Writer) *Sink {
	return NewSink(name, func(level Level, msg []byte) {
		fmt.Fprintf(w, "[%s] %s\n", level, msg) //nolint:errcheck // see doc comment
	})
}
