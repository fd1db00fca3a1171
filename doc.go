// Package picolog provides minimal, allocation-conscious leveled logging for
// resource-constrained targets.
//
// Unlike most Go loggers, picolog does not own an output. Independent parts
// of a program emit messages through a single call site, and a small fixed
// table of subscribers - console, file, network, in-memory buffer - each
// choose, via a per-subscriber severity threshold, which messages they
// receive.
//
// # Basic Usage
//
// Initialize once at startup, which installs the default console sink at
// the given threshold:
//
//	picolog.Init(picolog.Warning)
//
//	arg := 42
//	picolog.Infof("arg is %d", arg)     // below Warning: dropped
//	picolog.Errorf("sensor offline")    // printed to the console
//
// # Subscribers
//
// A sink is a named handler. Subscribing the same *Sink again updates its
// threshold in place, so filtering can be changed at runtime without an
// explicit update call:
//
//	file, _ := picolog.NewFileSink("boot.log", 0, 0)
//	picolog.Subscribe(file, picolog.Debug)
//
//	// later: only keep errors
//	picolog.Subscribe(file, picolog.Error)
//
// The subscriber table has a fixed capacity (6 by default). Subscribe
// returns ErrSubscribersExceeded when the table is full and the sink is not
// already registered.
//
// # Delivery Contract
//
// Emit formats the message exactly once into a fixed scratch buffer shared
// by all calls, then invokes every matching sink synchronously, in table
// order, on the caller's goroutine. The msg slice passed to a handler is
// borrowed: it is overwritten by the next Emit, so a handler that wants to
// keep the text must copy it before returning. Handlers must not call back
// into Subscribe, Unsubscribe, or Emit, and must not panic.
//
// Over-length messages are silently truncated at the buffer capacity
// (120 bytes by default). Truncation is not an error.
//
// # Concurrency
//
// The facility is built for single-threaded or cooperatively scheduled
// environments and performs no synchronization of its own. Concurrent use
// of one Logger from multiple goroutines is a data race unless the Logger
// was constructed with WithLocking, which serializes all operations behind
// a mutex.
//
// # Disabling at Build Time
//
// Building with the picolog_off tag turns the entire package-level facade
// (Init, Subscribe, Emit, the level helpers) into no-ops, the moral
// equivalent of compiling a C logging macro down to nothing.
package picolog
