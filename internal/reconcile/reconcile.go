package reconcile

import (
	"iter"

	"github.com/dshills/blocksel/internal/config"
	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/logging"
	"github.com/dshills/blocksel/internal/selection"
)

// Snapshot is the editor state Reconcile reads.
type Snapshot interface {
	// Selection returns the current selection.
	Selection() *selection.Selection
	// BlockKeys yields block keys in document order.
	BlockKeys() iter.Seq[string]
	// BlockTree returns a block's leaf tree.
	BlockTree(blockKey string) (document.LeafTree, bool)
}

// Reconciler converts render-layer selections into document selections.
type Reconciler struct {
	diagnostics bool
	logger      *logging.Logger
}

// New creates a reconciler. Diagnostics are off by default.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("reconcile")
	return r
}

// NewFromConfig creates a reconciler configured by cfg.
func NewFromConfig(cfg config.Config, opts ...Option) *Reconciler {
	return New(append([]Option{FromConfig(cfg)}, opts...)...)
}

// Diagnostics reports whether development checks are enabled.
func (r *Reconciler) Diagnostics() bool {
	return r.diagnostics
}

// Reconcile returns the selection described by two render-layer endpoints.
//
// anchorKey and focusKey are leaf offset keys; anchorOffset and focusOffset
// are offsets within those leaves. When the resolved endpoints equal the
// current selection's, the current *Selection is returned as is. Otherwise
// a new selection is returned with endpoints and direction replaced and
// every other field carried over.
//
// Any endpoint that cannot be resolved fails the call with an
// *EndpointError. With diagnostics enabled, an empty key is not an error:
// it is logged and the current selection is returned.
func (r *Reconciler) Reconcile(snap Snapshot, anchorKey string, anchorOffset int, focusKey string, focusOffset int) (*selection.Selection, error) {
	current := snap.Selection()
	if current == nil {
		return nil, ErrNoSelection
	}

	if r.diagnostics && (anchorKey == "" || focusKey == "") {
		r.warnInvalid(snap, anchorKey, anchorOffset, focusKey, focusOffset)
		return current, nil
	}

	anchor, err := resolve(snap, Anchor, anchorKey, anchorOffset)
	if err != nil {
		return nil, err
	}
	focus, err := resolve(snap, Focus, focusKey, focusOffset)
	if err != nil {
		return nil, err
	}

	if matchesCurrent(current, anchor, focus) {
		return current, nil
	}

	backward, err := isBackward(snap, anchor, focus)
	if err != nil {
		return nil, err
	}

	return update(current, anchor, focus, backward), nil
}

// warnInvalid logs an empty render key along with the snapshot state.
func (r *Reconciler) warnInvalid(snap Snapshot, anchorKey string, anchorOffset int, focusKey string, focusOffset int) {
	fields := map[string]any{
		"anchorKey":    anchorKey,
		"anchorOffset": anchorOffset,
		"focusKey":     focusKey,
		"focusOffset":  focusOffset,
	}
	if d, ok := snap.(interface{ JSON() ([]byte, error) }); ok {
		if data, err := d.JSON(); err == nil {
			fields["snapshot"] = string(data)
		}
	}
	r.logger.WithFields(fields).Warn("invalid selection state")
}

var defaultReconciler = &Reconciler{logger: logging.Nop()}

// Reconcile runs a reconciler with diagnostics disabled.
func Reconcile(snap Snapshot, anchorKey string, anchorOffset int, focusKey string, focusOffset int) (*selection.Selection, error) {
	return defaultReconciler.Reconcile(snap, anchorKey, anchorOffset, focusKey, focusOffset)
}
