// Package resultlog appends classification results to per-classifier log
// files. Records are delimited, human-readable, and survive across batch
// runs; rotation keeps the files bounded.
package resultlog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 5
)

// FileFor returns the log file name for a classifier. Names match the
// historical log files so downstream tooling keeps working.
func FileFor(classifier string) string {
	if classifier == "reproduction" {
		return "locate_reproduction_code.log"
	}
	return "locate_" + classifier + ".log"
}

// Writer appends result records under a fixed directory. Each Writer stamps
// its records with a run ID so batch invocations can be told apart.
type Writer struct {
	dir   string
	runID string

	mu       sync.Mutex
	rotators map[string]*lumberjack.Logger
}

// New creates a Writer that appends logs under dir.
func New(dir string) *Writer {
	return &Writer{
		dir:      dir,
		runID:    uuid.NewString(),
		rotators: make(map[string]*lumberjack.Logger),
	}
}

// RunID returns the identifier stamped on this writer's records.
func (w *Writer) RunID() string {
	return w.runID
}

// Append writes one delimited record for instanceID to the classifier's log.
func (w *Writer) Append(classifier, instanceID string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", 72))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "ID: %s\n", instanceID)
	fmt.Fprintf(&b, "Run: %s\n", w.runID)
	b.Write(data)
	b.WriteByte('\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	rot, ok := w.rotators[classifier]
	if !ok {
		rot = &lumberjack.Logger{
			Filename:   filepath.Join(w.dir, FileFor(classifier)),
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		}
		w.rotators[classifier] = rot
	}

	if _, err := rot.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("appending result log: %w", err)
	}
	return nil
}

// AppendError records a failed lookup so batch runs stay traceable.
func (w *Writer) AppendError(classifier, instanceID string, lookupErr error) error {
	return w.Append(classifier, instanceID, map[string]string{"error": lookupErr.Error()})
}

// Close flushes and closes all underlying log files.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var first error
	for _, rot := range w.rotators {
		if err := rot.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
