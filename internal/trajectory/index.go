package trajectory

import (
	"sort"
	"strconv"
	"strings"
)

// IndexingMode says how step indices are assigned for a whole trajectory.
type IndexingMode int

const (
	// ModePositional assigns 1-based indices in file order.
	ModePositional IndexingMode = iota
	// ModeExplicit uses the integer carried by every step.
	ModeExplicit
)

func (m IndexingMode) String() string {
	if m == ModeExplicit {
		return "explicit"
	}
	return "positional"
}

// Fields that may carry an explicit step index, in probe order.
var indexFields = []string{"step", "index", "idx"}

// Mode decides the indexing mode for a trajectory. Explicit indexing is used
// only when every step carries a convertible integer under one of the index
// fields; a single holdout switches the whole trajectory to positional.
func Mode(steps []Step) IndexingMode {
	if len(steps) == 0 {
		return ModePositional
	}
	for _, s := range steps {
		if _, ok := explicitIndex(s); !ok {
			return ModePositional
		}
	}
	return ModeExplicit
}

// Indexed pairs each step with its index per the trajectory's mode. In
// explicit mode the sequence is stable-sorted by index, ties keeping file
// order, so the yielded indices are monotonic non-decreasing.
func Indexed(steps []Step) []IndexedStep {
	out := make([]IndexedStep, 0, len(steps))

	if Mode(steps) == ModeExplicit {
		for _, s := range steps {
			idx, _ := explicitIndex(s)
			out = append(out, IndexedStep{Index: idx, Step: s})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Index < out[j].Index
		})
		return out
	}

	for i, s := range steps {
		out = append(out, IndexedStep{Index: i + 1, Step: s})
	}
	return out
}

// explicitIndex probes the index fields in order and returns the first value
// convertible to an integer. A present but unconvertible field falls through
// to the next probe.
func explicitIndex(s Step) (int, bool) {
	for _, field := range indexFields {
		v, present := s[field]
		if !present {
			continue
		}
		if n, ok := toInt(v); ok {
			return n, true
		}
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
