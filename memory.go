package picolog

// Record is one retained log message. The text is a copy; it stays valid
// after the logger's scratch buffer has been overwritten.
type Record struct {
	Level   Level
	Message string
}

// MemorySink retains the most recent messages in a fixed ring, for targets
// that keep a post-mortem log in RAM instead of (or in addition to) a
// console. The ring is sized once at construction and never grows.
//
//	ring := picolog.NewMemorySink(32)
//	picolog.Subscribe(ring.Sink(), picolog.Trace)
//	...
//	for _, r := range ring.Records() {
//	    fmt.Println(r.Level, r.Message)
//	}
//
// MemorySink performs no synchronization of its own; like the Logger, it
// assumes a single-threaded host unless the Logger was built WithLocking,
// in which case deliveries are already serialized.
type MemorySink struct {
	sink    *Sink
	records []Record
	next    int
	count   int
}

// NewMemorySink creates a ring retaining the last n messages. n must be
// at least 1.
func NewMemorySink(n int) *MemorySink {
	if n < 1 {
		panic("picolog: NewMemorySink requires capacity of at least 1")
	}
	m := &MemorySink{records: make([]Record, n)}
	m.sink = NewSink("memory", m.store)
	return m
}

// Sink returns the subscribable sink. Every call returns the same *Sink, so
// re-subscribing updates the threshold rather than occupying a second slot.
func (m *MemorySink) Sink() *Sink {
	return m.sink
}

// store copies the borrowed msg; retaining the slice itself would alias the
// logger's scratch buffer.
func (m *MemorySink) store(level Level, msg []byte) {
	m.records[m.next] = Record{Level: level, Message: string(msg)}
	m.next = (m.next + 1) % len(m.records)
	if m.count < len(m.records) {
		m.count++
	}
}

// Records returns the retained messages, oldest first. The returned slice
// is a copy and safe to hold.
func (m *MemorySink) Records() []Record {
	out := make([]Record, 0, m.count)
	start := m.next - m.count
	if start < 0 {
		start += len(m.records)
	}
	for i := 0; i < m.count; i++ {
		out = append(out, m.records[(start+i)%len(m.records)])
	}
	return out
}

// Reset discards all retained messages.
func (m *MemorySink) Reset() {
	m.next = 0
	m.count = 0
}
