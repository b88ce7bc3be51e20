package resultlog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendWritesDelimitedRecord(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)
	defer w.Close()

	if err := w.Append("search", "agent@proj__1", []int{2, 5, 9}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "locate_search.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		strings.Repeat("-", 72),
		"ID: agent@proj__1",
		"Run: " + w.RunID(),
		"[\n  2,\n  5,\n  9\n]",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestAppendAccumulatesAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)
	defer w.Close()

	if err := w.Append("tool_use", "id-1", map[string]int{"view": 3}); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("tool_use", "id-2", map[string]int{"bash": 1}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "locate_tool_use.log"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "ID: id-1") || !strings.Contains(content, "ID: id-2") {
		t.Errorf("expected both records present:\n%s", content)
	}
}

func TestAppendErrorRecord(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)
	defer w.Close()

	if err := w.AppendError("reproduction", "ghost@proj", errors.New("no trajectory file found")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "locate_reproduction_code.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"error": "no trajectory file found"`) {
		t.Errorf("expected error payload in log:\n%s", data)
	}
}

func TestFileFor(t *testing.T) {
	tests := []struct {
		classifier string
		want       string
	}{
		{"reproduction", "locate_reproduction_code.log"},
		{"search", "locate_search.log"},
		{"tool_use", "locate_tool_use.log"},
	}
	for _, tt := range tests {
		if got := FileFor(tt.classifier); got != tt.want {
			t.Errorf("FileFor(%q) = %q, want %q", tt.classifier, got, tt.want)
		}
	}
}
