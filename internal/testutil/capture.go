// Package testutil provides shared helpers for tests across the module: a
// capturing log output and builders for scored populations and instance
// files.
package testutil

import (
	"sync"

	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
)

// CaptureOutput implements logging.Output and records every entry written to
// it, so tests can assert on report lines.
type CaptureOutput struct {
	mu      sync.Mutex
	entries []logging.LogEntry
}

// NewCaptureOutput creates an empty CaptureOutput.
func NewCaptureOutput() *CaptureOutput {
	return &CaptureOutput{
		entries: make([]logging.LogEntry, 0),
	}
}

// Write implements logging.Output.
func (o *CaptureOutput) Write(entry logging.LogEntry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, entry)
	return nil
}

// Sync implements logging.Output.
func (o *CaptureOutput) Sync() error {
	return nil
}

// Close implements logging.Output.
func (o *CaptureOutput) Close() error {
	return nil
}

// Entries returns a copy of the recorded entries in write order.
func (o *CaptureOutput) Entries() []logging.LogEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	entries := make([]logging.LogEntry, len(o.entries))
	copy(entries, o.entries)
	return entries
}

// Messages returns the recorded entries' formatted messages in write order.
func (o *CaptureOutput) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	messages := make([]string, len(o.entries))
	for i, entry := range o.entries {
		messages[i] = entry.Message
	}
	return messages
}

// Reset discards the recorded entries.
func (o *CaptureOutput) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = o.entries[:0]
}

var _ logging.Output = (*CaptureOutput)(nil)

// NewCaptureLogger returns a DEBUG-severity logger wired to a fresh
// CaptureOutput.
func NewCaptureLogger() (*logging.Logger, *CaptureOutput) {
	output := NewCaptureOutput()
	logger := logging.NewLogger(logging.Config{
		Severity: logging.DEBUG,
		Outputs:  []logging.Output{output},
	})
	return logger, output
}
