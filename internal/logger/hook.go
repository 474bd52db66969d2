package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook buffers log entries on a channel and writes them to the
// configured writers from a dedicated goroutine, so logging never blocks
// request handling. Entries are dropped when the buffer is full.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook creates an async hook feeding the given writers.
// bufferSize is the number of entries buffered before drops occur.
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels returns the log levels handled by this hook.
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire queues the entry without blocking. A full buffer drops the entry.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil
	}

	// Dup the entry: logrus reuses entries after Fire returns.
	dup := entry.Dup()
	dup.Level = entry.Level
	dup.Message = entry.Message

	select {
	case h.entries <- dup:
	default:
		// Buffer full, drop the entry rather than block.
	}
	return nil
}

// processEntries drains the channel and writes each entry to every writer.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()
	for entry := range h.entries {
		line, err := entry.Bytes()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: failed to format entry: %v\n", err)
			continue
		}
		for _, w := range h.writers {
			if _, err := w.Write(line); err != nil {
				fmt.Fprintf(os.Stderr, "logger: failed to write entry: %v\n", err)
			}
		}
	}
}

// Close stops the hook and waits for buffered entries to flush.
func (h *AsyncHook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
}
