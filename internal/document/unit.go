package document

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is the measure used for leaf and selection offsets.
type Unit int

const (
	// UnitRune counts Unicode code points.
	UnitRune Unit = iota
	// UnitUTF16 counts UTF-16 code units, matching browser string offsets.
	UnitUTF16
	// UnitGrapheme counts user-perceived characters.
	UnitGrapheme
	// UnitByte counts UTF-8 bytes.
	UnitByte
)

// String returns the configuration name of the unit.
func (u Unit) String() string {
	switch u {
	case UnitRune:
		return "rune"
	case UnitUTF16:
		return "utf16"
	case UnitGrapheme:
		return "grapheme"
	case UnitByte:
		return "byte"
	default:
		return "unknown"
	}
}

// ParseUnit parses a unit name as produced by String.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rune", "char", "codepoint":
		return UnitRune, nil
	case "utf16", "utf-16":
		return UnitUTF16, nil
	case "grapheme", "cluster":
		return UnitGrapheme, nil
	case "byte", "bytes":
		return UnitByte, nil
	default:
		return UnitRune, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Length returns the length of text in this unit.
func (u Unit) Length(text string) int {
	switch u {
	case UnitUTF16:
		n := 0
		for _, r := range text {
			n += utf16.RuneLen(r)
		}
		return n
	case UnitGrapheme:
		return uniseg.GraphemeClusterCount(text)
	case UnitByte:
		return len(text)
	default:
		return utf8.RuneCountInString(text)
	}
}
