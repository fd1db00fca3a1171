package picolog

import (
	"context"

	"github.com/zoobzio/pipz"
)

// Message is the event type handed to pipz pipelines by NewPipelineSink.
// The text is copied out of the logger's scratch buffer before the pipeline
// runs, so Message values are safe to hold, queue, or clone.
type Message struct {
	Level Level
	Text  string
}

// Clone implements pipz.Cloner, allowing Message pipelines to use
// connectors that fan out to concurrent stages.
func (m Message) Clone() Message {
	return m
}

// NewPipelineSink bridges deliveries into a pipz pipeline.
//
// The pipeline is processed synchronously on the delivering goroutine, like
// every other sink; the dispatcher makes no exception for it. What the
// pipeline does with the message - filter it, retry a flaky shipper, tee it
// to several stages - is the caller's composition:
//
//	drop := pipz.NewFilter[picolog.Message]("errors-only",
//	    func(_ context.Context, m picolog.Message) bool { return m.Level >= picolog.Error },
//	    shipper)
//	picolog.Subscribe(picolog.NewPipelineSink("shipper", drop), picolog.Trace)
//
// Pipeline errors are discarded; the dispatcher has no error channel.
func NewPipelineSink(name string, pipe pipz.Chainable[Message]) *Sink {
	return NewSink(name, func(level Level, msg []byte) {
		m := Message{Level: level, Text: string(msg)}
		_, _ = pipe.Process(context.Background(), m) //nolint:errcheck // see doc comment
	})
}
