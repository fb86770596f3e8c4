package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOutputColor(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		color    bool
	}{
		{"ColorDebug", DEBUG, true},
		{"ColorInfo", INFO, true},
		{"ColorWarn", WARN, true},
		{"ColorError", ERROR, true},
		{"ColorFatal", FATAL, true},
		{"NoColor", INFO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			console := NewConsoleOutput(false, WithWriter(buffer), WithColor(tt.color))

			entry := LogEntry{
				Time:     time.Now().UnixNano(),
				Severity: tt.severity,
				Message:  "test message",
			}

			err := console.Write(entry)
			require.NoError(t, err)

			output := buffer.String()
			assert.Contains(t, output, "test message")
			if tt.color {
				assert.Contains(t, output, "\033[")
			} else {
				assert.NotContains(t, output, "\033[")
			}
		})
	}
}

func TestConsoleOutputFields(t *testing.T) {
	buffer := &bytes.Buffer{}
	console := NewConsoleOutput(false, WithWriter(buffer), WithColor(false))

	entry := LogEntry{
		Time:     time.Now().UnixNano(),
		Severity: INFO,
		Message:  "generation report",
		Fields: map[string]interface{}{
			"generation": 7,
		},
	}

	require.NoError(t, console.Write(entry))
	assert.Contains(t, buffer.String(), "generation=7")
}

func TestOutputSyncAndClose(t *testing.T) {
	// Test with file-backed writer
	tmpFile, err := os.CreateTemp("", "log-test-*")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	console := NewConsoleOutput(false, WithWriter(tmpFile), WithColor(false))

	// Test Sync
	err = console.Sync()
	assert.NoError(t, err)

	// Test Close
	err = console.Close()
	assert.NoError(t, err)

	// Test with non-syncable writer
	buffer := &bytes.Buffer{}
	console = NewConsoleOutput(false, WithWriter(buffer), WithColor(false))

	err = console.Sync()
	assert.NoError(t, err)

	err = console.Close()
	assert.NoError(t, err)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	out, err := NewFileOutput(path)
	require.NoError(t, err)

	entry := LogEntry{
		Time:     time.Now().UnixNano(),
		Severity: INFO,
		Message:  "best score in generation 3 was Value(9)",
		Fields: map[string]interface{}{
			"entropy": 0.5,
		},
	}

	require.NoError(t, out.Write(entry))
	require.NoError(t, out.Sync())
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "best score in generation 3 was Value(9)")
	assert.Contains(t, string(data), "entropy=0.5")
}
