package reconcile

import (
	"slices"
	"testing"
)

func TestFirstOf(t *testing.T) {
	keys := slices.Values([]string{"B1", "B2", "B3"})

	tests := []struct {
		a, b     string
		expected string
		ok       bool
	}{
		{"B3", "B1", "B1", true},
		{"B2", "B3", "B2", true},
		{"B3", "missing", "B3", true},
		{"x", "y", "", false},
	}

	for _, tt := range tests {
		got, ok := firstOf(keys, tt.a, tt.b)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("firstOf(%q, %q) = %q, %v; expected %q, %v", tt.a, tt.b, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestCrossBlockDirectionMissingBlocks(t *testing.T) {
	snap := snapshotWith(t, nil)
	anchor := endpoint{blockKey: "X"}
	focus := endpoint{blockKey: "Y"}

	if _, err := isBackward(snap, anchor, focus); err == nil {
		t.Error("expected error when neither block is in content")
	}
}
