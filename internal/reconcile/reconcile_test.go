package reconcile

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dshills/blocksel/internal/config"
	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/logging"
	"github.com/dshills/blocksel/internal/offsetkey"
	"github.com/dshills/blocksel/internal/selection"
)

// Block B1 "0123456789abcdefghij0123456789" is split into three decorator
// segments; the middle one renders as two leaves.
//
//	B1-0-0 [0:10)
//	B1-1-0 [10:15)  B1-1-1 [15:20)
//	B1-2-0 [20:30)
//
// B2 and B3 are undecorated.
func testBlocks() []document.Block {
	return []document.Block{
		{
			Key:  "B1",
			Text: "0123456789abcdefghij0123456789",
			Tree: document.LeafTree{
				{Start: 0, End: 10, Leaves: []document.Leaf{{Start: 0, End: 10}}},
				{Start: 10, End: 20, Leaves: []document.Leaf{{Start: 10, End: 15}, {Start: 15, End: 20}}},
				{Start: 20, End: 30, Leaves: []document.Leaf{{Start: 20, End: 30}}},
			},
		},
		{Key: "B2", Text: "second block", Tree: document.SingleLeafTree("second block", document.UnitRune)},
		{Key: "B3", Text: "third", Tree: document.SingleLeafTree("third", document.UnitRune)},
	}
}

func snapshotWith(t *testing.T, sel *selection.Selection) *document.Snapshot {
	t.Helper()
	snap, err := document.New(testBlocks(), sel)
	if err != nil {
		t.Fatalf("document.New failed: %v", err)
	}
	return snap
}

func at(key string, offset int) selection.Point {
	return selection.Point{Key: key, Offset: offset}
}

func TestOffsetTranslation(t *testing.T) {
	snap := snapshotWith(t, nil)

	got, err := Reconcile(snap, "B1-1-0", 3, "B1-1-1", 4)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got.AnchorKey() != "B1" || got.AnchorOffset() != 13 {
		t.Errorf("expected anchor B1:13, got %s", got.Anchor())
	}
	if got.FocusKey() != "B1" || got.FocusOffset() != 19 {
		t.Errorf("expected focus B1:19, got %s", got.Focus())
	}
}

func TestIdentityWhenUnchanged(t *testing.T) {
	current := selection.New(at("B1", 13), at("B2", 4)).WithFocus(true)
	snap := snapshotWith(t, current)

	got, err := Reconcile(snap, "B1-1-0", 3, "B2-0-0", 4)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got != current {
		t.Fatalf("expected the current selection instance, got %s", got)
	}
	if !got.Equal(selection.New(at("B1", 13), at("B2", 4)).WithFocus(true)) {
		t.Errorf("fields changed on no-op path: %s", got)
	}
}

func TestIdentitySkipsDirection(t *testing.T) {
	// The stored direction is stale, but positions match: the guard wins
	// and the direction is not recomputed.
	current := selection.New(at("B1", 5), at("B1", 2)).Merge(selection.Fields{IsBackward: selection.Ptr(false)})
	snap := snapshotWith(t, current)

	got, err := Reconcile(snap, "B1-0-0", 5, "B1-0-0", 2)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got != current {
		t.Error("expected the current selection instance")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name         string
		anchorKey    string
		anchorOffset int
		focusKey     string
		focusOffset  int
		backward     bool
	}{
		{"same leaf backward", "B1-0-0", 5, "B1-0-0", 2, true},
		{"same leaf forward", "B1-0-0", 2, "B1-0-0", 5, false},
		{"same leaf collapsed", "B1-0-0", 4, "B1-0-0", 4, false},
		{"same block later leaf", "B1-0-0", 9, "B1-1-0", 0, false},
		{"same block earlier leaf", "B1-2-0", 0, "B1-1-1", 4, true},
		{"same segment sibling leaves", "B1-1-1", 0, "B1-1-0", 4, true},
		{"cross block forward", "B1-0-0", 1, "B3-0-0", 1, false},
		{"cross block backward", "B3-0-0", 1, "B1-0-0", 1, true},
		{"adjacent blocks backward", "B2-0-0", 0, "B1-2-0", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotWith(t, selection.CreateEmpty("B3"))
			got, err := Reconcile(snap, tt.anchorKey, tt.anchorOffset, tt.focusKey, tt.focusOffset)
			if err != nil {
				t.Fatalf("Reconcile failed: %v", err)
			}
			if got.IsBackward() != tt.backward {
				t.Errorf("IsBackward() = %v, expected %v (%s)", got.IsBackward(), tt.backward, got)
			}
		})
	}
}

func TestDirectionUsesLeafStartNotOffset(t *testing.T) {
	// Decorator 0 covers [5:10) and decorator 1 covers [0:5). Validate
	// rejects segments out of order, so the snapshot skips it.
	blocks := []document.Block{{
		Key:  "K",
		Text: "0123456789",
		Tree: document.LeafTree{
			{Start: 5, End: 10, Leaves: []document.Leaf{{Start: 5, End: 10}}},
			{Start: 0, End: 5, Leaves: []document.Leaf{{Start: 0, End: 5}}},
		},
	}}
	snap := document.MustNew(blocks, nil, document.WithoutValidation())

	got, err := Reconcile(snap, "K-0-0", 0, "K-1-0", 4)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if !got.IsBackward() {
		t.Errorf("focus leaf starts first, expected backward: %s", got)
	}
}

func TestPreservesHasFocus(t *testing.T) {
	current := selection.CreateEmpty("B1").WithFocus(true)
	snap := snapshotWith(t, current)

	got, err := Reconcile(snap, "B2-0-0", 1, "B2-0-0", 3)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got == current {
		t.Fatal("expected a new selection")
	}
	if !got.HasFocus() {
		t.Error("hasFocus should carry over from the current selection")
	}
	if current.AnchorKey() != "B1" {
		t.Error("current selection must not be modified")
	}
}

func TestStaleKey(t *testing.T) {
	snap := snapshotWith(t, nil)

	tests := []struct {
		name      string
		anchorKey string
		focusKey  string
		endpoint  Endpoint
	}{
		{"leaf index past segment", "B1-1-2", "B1-0-0", Anchor},
		{"decorator index past tree", "B1-0-0", "B1-9-0", Focus},
		{"unknown block", "gone-0-0", "B1-0-0", Anchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconcile(snap, tt.anchorKey, 0, tt.focusKey, 0)
			if !errors.Is(err, ErrLeafNotFound) {
				t.Fatalf("expected ErrLeafNotFound, got %v", err)
			}
			var epErr *EndpointError
			if !errors.As(err, &epErr) {
				t.Fatalf("expected *EndpointError, got %T", err)
			}
			if epErr.Endpoint != tt.endpoint {
				t.Errorf("expected endpoint %s, got %s", tt.endpoint, epErr.Endpoint)
			}
		})
	}
}

func TestMalformedKeyWithoutDiagnostics(t *testing.T) {
	snap := snapshotWith(t, nil)

	_, err := Reconcile(snap, "", 0, "B1-0-0", 0)
	if !errors.Is(err, offsetkey.ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got %v", err)
	}

	_, err = Reconcile(snap, "B1-0-0", 0, "B1-zero-0", 0)
	var epErr *EndpointError
	if !errors.As(err, &epErr) || epErr.Endpoint != Focus {
		t.Errorf("expected focus *EndpointError, got %v", err)
	}
}

func TestNegativeOffset(t *testing.T) {
	snap := snapshotWith(t, nil)
	_, err := Reconcile(snap, "B1-0-0", -1, "B1-0-0", 0)
	if !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("expected ErrNegativeOffset, got %v", err)
	}
}

func TestDiagnosticGuard(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	r := New(WithDiagnostics(true), WithLogger(logger))

	current := selection.New(at("B1", 1), at("B1", 2))
	snap := snapshotWith(t, current)

	for _, keys := range [][2]string{{"", "B1-0-0"}, {"B1-0-0", ""}} {
		buf.Reset()
		got, err := r.Reconcile(snap, keys[0], 0, keys[1], 0)
		if err != nil {
			t.Fatalf("diagnostic guard should not fail, got %v", err)
		}
		if got != current {
			t.Errorf("expected current selection, got %s", got)
		}
		out := buf.String()
		if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "invalid selection state") {
			t.Errorf("expected warning, got %q", out)
		}
		if !strings.Contains(out, "component=reconcile") {
			t.Errorf("expected component field, got %q", out)
		}
		if !strings.Contains(out, `"blocks"`) {
			t.Errorf("expected snapshot dump in warning, got %q", out)
		}
	}
}

func TestDiagnosticsDoNotMaskStaleKeys(t *testing.T) {
	r := New(WithDiagnostics(true), WithLogger(logging.Nop()))
	snap := snapshotWith(t, nil)

	_, err := r.Reconcile(snap, "B1-5-0", 0, "B1-0-0", 0)
	if !errors.Is(err, ErrLeafNotFound) {
		t.Errorf("expected ErrLeafNotFound, got %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Diagnostics = true

	r := NewFromConfig(cfg, WithLogger(logging.Nop()))
	if !r.Diagnostics() {
		t.Error("expected diagnostics from config")
	}
	if New().Diagnostics() {
		t.Error("diagnostics should be off by default")
	}
}

func TestConcurrentReconcile(t *testing.T) {
	snap := snapshotWith(t, nil)
	r := New(WithLogger(logging.Nop()))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			sel, err := r.Reconcile(snap, "B1-2-0", offset%10, "B1-0-0", 0)
			if err != nil {
				errs <- err
				return
			}
			if sel.AnchorOffset() != 20+offset%10 {
				errs <- errors.New("wrong anchor offset")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
