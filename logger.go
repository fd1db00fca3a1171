package picolog

import (
	"errors"
	"fmt"
	"sync"
)

// Build-time defaults, overridable per Logger with options.
const (
	// DefaultMaxSubscribers is the default capacity of the subscriber table.
	DefaultMaxSubscribers = 6
	// DefaultMaxMessage is the default capacity, in bytes, of the shared
	// message buffer. Formatted messages longer than this are truncated.
	DefaultMaxMessage = 120
)

var (
	// ErrSubscribersExceeded is returned by Subscribe when the table is full
	// and the sink is not already registered. The table is left unchanged;
	// the caller decides whether to drop the request or evict another sink.
	ErrSubscribersExceeded = errors.New("picolog: subscriber table is full")

	// ErrNotSubscribed is returned by Unsubscribe for a sink that is not
	// currently registered. Most callers treat it as a no-op.
	ErrNotSubscribed = errors.New("picolog: sink is not subscribed")
)

// subscription is one slot in the table. A nil sink marks a free slot.
type subscription struct {
	sink      *Sink
	threshold Level
}

// Logger is one logging facility instance: a fixed-capacity subscriber
// table plus a fixed-capacity scratch buffer, both allocated once at
// construction. Package-level functions operate on a shared default
// instance; tests and libraries that want isolation can construct their own.
//
// A Logger performs no synchronization unless built with WithLocking.
type Logger struct {
	subs []subscription
	buf  truncWriter
	mu   *sync.Mutex
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithMaxSubscribers sets the subscriber table capacity. Values below 1
// are ignored.
func WithMaxSubscribers(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.subs = make([]subscription, n)
		}
	}
}

// WithMaxMessage sets the message buffer capacity in bytes. Formatted
// messages are truncated to this length. Values below 1 are ignored.
func WithMaxMessage(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.buf.buf = make([]byte, n)
		}
	}
}

// WithLocking serializes all Logger operations behind a mutex, for hosts
// that emit from more than one goroutine. Without it the Logger assumes a
// single-threaded or cooperatively scheduled environment and concurrent use
// is a data race.
func WithLocking() Option {
	return func(l *Logger) {
		l.mu = &sync.Mutex{}
	}
}

// New constructs an empty Logger. All memory the Logger will ever use for
// bookkeeping is allocated here.
func New(opts ...Option) *Logger {
	l := &Logger{}
	for _, opt := range opts {
		opt(l)
	}
	if l.subs == nil {
		l.subs = make([]subscription, DefaultMaxSubscribers)
	}
	if l.buf.buf == nil {
		l.buf.buf = make([]byte, DefaultMaxMessage)
	}
	return l
}

// Init resets the Logger to empty and installs the default console sink at
// the given threshold. Re-initializing is a full facility reset: every
// prior subscription is cleared, including ones added by other callers.
func (l *Logger) Init(threshold Level) {
	l.Reset()
	l.Subscribe(defaultConsole, threshold) //nolint:errcheck // table was just cleared
}

// Reset clears every subscription. Unlike Init it installs nothing.
func (l *Logger) Reset() {
	l.lock()
	defer l.unlock()
	for i := range l.subs {
		l.subs[i] = subscription{}
	}
}

// Subscribe registers s to receive every message whose severity is at or
// above threshold. If s is already registered its threshold is replaced and
// no new entry is created. Returns ErrSubscribersExceeded when the table is
// full and s is not present; the table is unchanged on failure.
func (l *Logger) Subscribe(s *Sink, threshold Level) error {
	if s == nil {
		panic("picolog: Subscribe called with a nil sink")
	}
	l.lock()
	defer l.unlock()

	free := -1
	for i := range l.subs {
		switch {
		case l.subs[i].sink == s:
			// Already subscribed: update in place.
			l.subs[i].threshold = threshold
			return nil
		case l.subs[i].sink == nil && free < 0:
			free = i
		}
	}
	if free < 0 {
		return ErrSubscribersExceeded
	}
	l.subs[free] = subscription{sink: s, threshold: threshold}
	return nil
}

// Unsubscribe removes s from the table, freeing its slot for reuse.
// Returns ErrNotSubscribed if s is not registered.
func (l *Logger) Unsubscribe(s *Sink) error {
	if s == nil {
		return ErrNotSubscribed
	}
	l.lock()
	defer l.unlock()
	for i := range l.subs {
		if l.subs[i].sink == s {
			l.subs[i] = subscription{}
			return nil
		}
	}
	return ErrNotSubscribed
}

// Emit formats the message once into the shared scratch buffer, truncating
// silently at the buffer capacity, then delivers the bytes to every
// registered sink whose threshold admits severity - synchronously, in table
// order, on the caller's goroutine. Emit cannot fail from the caller's
// perspective; sink handlers have no way to report errors to the dispatcher.
//
// The buffer is reused by every call, so handlers must not retain the msg
// slice they receive (see HandlerFunc).
func (l *Logger) Emit(severity Level, format string, args ...any) {
	l.lock()
	defer l.unlock()

	l.buf.n = 0
	fmt.Fprintf(&l.buf, format, args...)
	msg := l.buf.buf[:l.buf.n]

	for i := range l.subs {
		sub := l.subs[i]
		if sub.sink != nil && severity >= sub.threshold {
			sub.sink.fn(severity, msg)
		}
	}
}

// Printf-style helpers, one per level.

// Tracef emits at Trace.
func (l *Logger) Tracef(format string, args ...any) { l.Emit(Trace, format, args...) }

// Debugf emits at Debug.
func (l *Logger) Debugf(format string, args ...any) { l.Emit(Debug, format, args...) }

// Infof emits at Info.
func (l *Logger) Infof(format string, args ...any) { l.Emit(Info, format, args...) }

// Warningf emits at Warning.
func (l *Logger) Warningf(format string, args ...any) { l.Emit(Warning, format, args...) }

// Errorf emits at Error.
func (l *Logger) Errorf(format string, args ...any) { l.Emit(Error, format, args...) }

// Criticalf emits at Critical.
func (l *Logger) Criticalf(format string, args ...any) { l.Emit(Critical, format, args...) }

// Alwaysf emits at Always, which no threshold filters out.
func (l *Logger) Alwaysf(format string, args ...any) { l.Emit(Always, format, args...) }

func (l *Logger) lock() {
	if l.mu != nil {
		l.mu.Lock()
	}
}

func (l *Logger) unlock() {
	if l.mu != nil {
		l.mu.Unlock()
	}
}

// truncWriter formats into a fixed buffer, dropping whatever does not fit.
// It reports full writes so fmt never sees a short-write error.
type truncWriter struct {
	buf []byte
	n   int
}

func (w *truncWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}
