package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleSink writes records to an io.Writer, one per line. It is the
// always-on delivery target; stdout carries records while logs go to stderr.
type ConsoleSink struct {
	mu      sync.Mutex
	w       io.Writer
	written int64
}

// NewConsoleSink creates a console sink. A nil writer means stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

// Name identifies the sink in logs and stats.
func (s *ConsoleSink) Name() string { return "console" }

// Start is a no-op; console writes are synchronous.
func (s *ConsoleSink) Start(ctx context.Context) error { return nil }

// Publish writes one record followed by a newline.
func (s *ConsoleSink) Publish(record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "%s\n", record); err != nil {
		return fmt.Errorf("console write: %w", err)
	}
	s.written++
	return nil
}

// Stop is a no-op; nothing is buffered.
func (s *ConsoleSink) Stop(ctx context.Context) error { return nil }

// Written returns the number of records written so far.
func (s *ConsoleSink) Written() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}
