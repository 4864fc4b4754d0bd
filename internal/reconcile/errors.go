package reconcile

import (
	"errors"
	"fmt"
)

// Errors returned by Reconcile.
var (
	// ErrLeafNotFound indicates an offset key no longer addresses a leaf,
	// usually because the block's leaf tree was regenerated.
	ErrLeafNotFound = errors.New("leaf not found")

	// ErrNegativeOffset indicates a negative intra-leaf offset.
	ErrNegativeOffset = errors.New("negative intra-leaf offset")

	// ErrBlockNotInContent indicates neither endpoint's block appears in
	// the snapshot's block order.
	ErrBlockNotInContent = errors.New("block not in content")

	// ErrNoSelection indicates the snapshot has no current selection.
	ErrNoSelection = errors.New("snapshot has no selection")
)

// Endpoint names a selection endpoint.
type Endpoint string

const (
	Anchor Endpoint = "anchor"
	Focus  Endpoint = "focus"
)

// EndpointError reports a failure resolving one endpoint.
type EndpointError struct {
	Endpoint Endpoint // Which endpoint failed
	Key      string   // The render offset key
	Err      error    // Underlying error
}

func (e *EndpointError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %v", e.Endpoint, e.Key, e.Err)
}

func (e *EndpointError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
