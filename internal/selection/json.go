package selection

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON indicates selection JSON could not be decoded.
var ErrInvalidJSON = errors.New("invalid selection json")

// JSON encodes the selection as an object with anchorKey, anchorOffset,
// focusKey, focusOffset, isBackward and hasFocus members.
func (s *Selection) JSON() ([]byte, error) {
	return s.AppendJSON([]byte("{}"), "")
}

// AppendJSON sets the selection fields under path in the JSON document
// dst. An empty path writes them at the top level.
func (s *Selection) AppendJSON(dst []byte, path string) ([]byte, error) {
	prefix := ""
	if path != "" {
		prefix = path + "."
	}
	values := []struct {
		name  string
		value any
	}{
		{"anchorKey", s.anchorKey},
		{"anchorOffset", s.anchorOffset},
		{"focusKey", s.focusKey},
		{"focusOffset", s.focusOffset},
		{"isBackward", s.isBackward},
		{"hasFocus", s.hasFocus},
	}

	var err error
	for _, v := range values {
		dst, err = sjson.SetBytes(dst, prefix+v.name, v.value)
		if err != nil {
			return nil, fmt.Errorf("encoding selection %s: %w", v.name, err)
		}
	}
	return dst, nil
}

// ParseJSON decodes a selection object produced by JSON.
func ParseJSON(data []byte) (*Selection, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return FromResult(gjson.ParseBytes(data))
}

// FromResult decodes a selection from an already parsed JSON value.
// anchorKey is required; a missing focus collapses onto the anchor.
func FromResult(r gjson.Result) (*Selection, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: expected object", ErrInvalidJSON)
	}
	anchorKey := r.Get("anchorKey")
	if anchorKey.Type != gjson.String || anchorKey.Str == "" {
		return nil, fmt.Errorf("%w: anchorKey must be a non-empty string", ErrInvalidJSON)
	}

	s := &Selection{
		anchorKey:    anchorKey.Str,
		anchorOffset: int(r.Get("anchorOffset").Int()),
		isBackward:   r.Get("isBackward").Bool(),
		hasFocus:     r.Get("hasFocus").Bool(),
	}
	if fk := r.Get("focusKey"); fk.Exists() {
		s.focusKey = fk.String()
		s.focusOffset = int(r.Get("focusOffset").Int())
	} else {
		s.focusKey = s.anchorKey
		s.focusOffset = s.anchorOffset
	}

	if s.anchorOffset < 0 || s.focusOffset < 0 {
		return nil, fmt.Errorf("%w: offsets must be non-negative", ErrInvalidJSON)
	}
	return s, nil
}
