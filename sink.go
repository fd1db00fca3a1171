package picolog

// HandlerFunc receives one delivered message.
//
// The msg slice is borrowed from the logger's shared scratch buffer and is
// only valid for the duration of the call: the next Emit overwrites it.
// Print it, parse it, or copy it, but saving the slice itself will lead to
// confusion and astonishment. Handlers must not call Subscribe, Unsubscribe,
// or Emit on the delivering logger, and must not panic - a panicking handler
// aborts the whole delivery pass and propagates to the Emit caller.
type HandlerFunc func(level Level, msg []byte)

// Sink couples a handler with a stable identity.
//
// The *Sink pointer is the subscription key: subscribing the same *Sink
// twice updates its threshold rather than adding a second entry, and two
// sinks built from separate NewSink calls are distinct subscribers even if
// their names collide. Identity is referential because Go functions are not
// comparable; the name exists for humans, not for deduplication.
//
// Common sinks are provided by this package - NewConsoleSink,
// NewWriterSink, NewFileSink, NewMemorySink, NewPipelineSink - but any
// handler honoring the HandlerFunc contract can be wrapped:
//
//	beeper := picolog.NewSink("beeper", func(level picolog.Level, msg []byte) {
//	    if level >= picolog.Critical {
//	        board.Buzzer.High()
//	    }
//	})
//	picolog.Subscribe(beeper, picolog.Critical)
type Sink struct {
	name string
	fn   HandlerFunc
}

// NewSink creates a sink that invokes fn for each delivered message.
// The name identifies the sink in debugging output.
func NewSink(name string, fn HandlerFunc) *Sink {
	if fn == nil {
		panic("picolog: NewSink called with a nil handler")
	}
	return &Sink{name: name, fn: fn}
}

// Name returns the sink's human-readable name.
func (s *Sink) Name() string {
	return s.name
}
