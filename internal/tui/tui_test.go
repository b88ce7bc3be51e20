package tui

import (
	"strings"
	"testing"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/classify"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

func testModel(t *testing.T) Model {
	t.Helper()
	steps := trajectory.Indexed([]trajectory.Step{
		{"action": "search_dir", "args": map[string]any{"pattern": "foo"}},
		{"action": "view"},
		{"action": "create", "path": "repro.py", "thought": "create a minimal repro"},
	})
	return New("agent@proj__1", "/tmp/agent@proj__1.json", steps, classify.RunAll(steps))
}

func TestNewBuildsRowsWithBadges(t *testing.T) {
	m := testModel(t)

	if len(m.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(m.rows))
	}
	if !m.rows[0].isSearch || !m.rows[1].isSearch {
		t.Errorf("expected first two rows flagged as search: %+v", m.rows)
	}
	if !m.rows[2].isRepro {
		t.Errorf("expected third row flagged as repro: %+v", m.rows)
	}
	if m.rows[0].action != "search_dir" {
		t.Errorf("row action = %q", m.rows[0].action)
	}
}

func TestJumpToHitSkipsUnclassified(t *testing.T) {
	steps := trajectory.Indexed([]trajectory.Step{
		{"action": "edit", "path": "a.go"},
		{"action": "search_dir"},
		{"action": "edit", "path": "b.go"},
	})
	m := New("id", "path", steps, classify.RunAll(steps))

	m.jumpToHit(1)
	if m.cursor != 1 {
		t.Errorf("expected cursor on the search step, got %d", m.cursor)
	}
	m.jumpToHit(1)
	if m.cursor != 1 {
		t.Errorf("cursor should stay put with no later hits, got %d", m.cursor)
	}
}

func TestDetailLinesRenderStepJSON(t *testing.T) {
	m := testModel(t)
	joined := stripANSI(strings.Join(m.detailLines, "\n"))
	if !strings.Contains(joined, "search_dir") {
		t.Errorf("detail should contain the step payload, got:\n%s", joined)
	}
}

func TestHighlightJSONLineCount(t *testing.T) {
	src := "{\n  \"a\": 1,\n  \"b\": \"two\"\n}"
	lines := highlightJSON(src)
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d: %q", len(lines), lines)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
