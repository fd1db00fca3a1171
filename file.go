package picolog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/trickstertwo/xclock"
)

// rotatingWriter appends to a file, rotating it when it outgrows maxSize.
// Rotated files are kept as name.1 (newest) through name.<maxFiles>.
type rotatingWriter struct {
	mu       sync.Mutex
	file     *os.File
	filename string
	maxSize  int64
	size     int64
	maxFiles int
}

func newRotatingWriter(filename string, maxSize int64, maxFiles int) (*rotatingWriter, error) {
	if maxSize <= 0 {
		maxSize = 1 << 20 // 1MB
	}
	if maxFiles <= 0 {
		maxFiles = 3
	}
	w := &rotatingWriter{
		filename: filename,
		maxSize:  maxSize,
		maxFiles: maxFiles,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *rotatingWriter) open() error {
	file, err := os.OpenFile(w.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("picolog: open log file %s: %w", w.filename, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("picolog: stat log file %s: %w", w.filename, err)
	}
	w.file = file
	w.size = info.Size()
	return nil
}

func (w *rotatingWriter) write(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.size+int64(len(data)) > w.maxSize {
		if err := w.rotate(); err != nil {
			// Keep appending to the current file rather than dropping
			// the message over a failed rename.
			if w.file == nil {
				return
			}
		}
	}
	n, err := w.file.Write(data)
	if err == nil {
		w.size += int64(n)
	}
}

func (w *rotatingWriter) rotate() error {
	if w.file != nil {
		w.file.Close()
	}

	// Shift name.1 -> name.2 and so on, discarding the oldest.
	for i := w.maxFiles - 1; i > 0; i-- {
		oldName := fmt.Sprintf("%s.%d", w.filename, i)
		newName := fmt.Sprintf("%s.%d", w.filename, i+1)
		if i == w.maxFiles-1 {
			os.Remove(newName)
		}
		if _, err := os.Stat(oldName); err == nil {
			if err := os.Rename(oldName, newName); err != nil {
				return fmt.Errorf("picolog: rotate %s to %s: %w", oldName, newName, err)
			}
		}
	}

	// A failed rename here means the old data is lost but logging continues
	// in a fresh file.
	os.Rename(w.filename, w.filename+".1") //nolint:errcheck

	return w.open()
}

// NewFileSink creates a sink that appends timestamped plain-text lines to
// filename, rotating by size.
//
// Each delivery produces one line of the form
//
//	2006-01-02T15:04:05Z [LEVEL] message
//
// The file rotates once it would exceed maxSize bytes (0 means 1MB), keeping
// at most maxFiles rotated files (0 means 3) named filename.1, filename.2,
// and so on, newest first.
//
//	sink, err := picolog.NewFileSink("logs/device.log", 512*1024, 4)
//	if err != nil { ... }
//	picolog.Subscribe(sink, picolog.Debug)
//
// The sink guards its own file state with a mutex, so it is safe to share
// between a locked Logger's goroutines; the Logger itself still requires
// WithLocking for concurrent Emit calls.
func NewFileSink(filename string, maxSize int64, maxFiles int) (*Sink, error) {
	w, err := newRotatingWriter(filename, maxSize, maxFiles)
	if err != nil {
		return nil, err
	}
	return NewSink("file", func(level Level, msg []byte) {
		line := fmt.Appendf(nil, "%s [%s] %s\n", xclock.Now().Format(time.RFC3339), level, msg)
		w.write(line)
	}), nil
}
