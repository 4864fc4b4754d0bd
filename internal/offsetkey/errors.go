package offsetkey

import (
	"errors"
	"fmt"
)

// ErrMalformedKey is matched by every decode failure.
var ErrMalformedKey = errors.New("malformed offset key")

// MalformedKeyError describes why a key could not be decoded.
type MalformedKeyError struct {
	Key    string // The raw key
	Reason string // What was wrong with it
}

func (e *MalformedKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("malformed offset key %q: %s", e.Key, e.Reason)
}

// Is reports whether target is ErrMalformedKey.
func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

func malformed(key, reason string) *MalformedKeyError {
	return &MalformedKeyError{Key: key, Reason: reason}
}
