package reconcile

import (
	"github.com/dshills/blocksel/internal/config"
	"github.com/dshills/blocksel/internal/logging"
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDiagnostics enables development checks. With diagnostics on, an empty
// render key is logged as a warning and the current selection is returned
// unchanged.
func WithDiagnostics(enabled bool) Option {
	return func(r *Reconciler) {
		r.diagnostics = enabled
	}
}

// WithLogger sets the logger used for diagnostic warnings.
func WithLogger(l *logging.Logger) Option {
	return func(r *Reconciler) {
		if l != nil {
			r.logger = l
		}
	}
}

// FromConfig applies the reconciler settings of cfg.
func FromConfig(cfg config.Config) Option {
	return func(r *Reconciler) {
		r.diagnostics = cfg.Diagnostics
	}
}
