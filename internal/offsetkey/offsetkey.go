package offsetkey

import (
	"strconv"
	"strings"
)

// Delimiter separates the three parts of an encoded key.
const Delimiter = "-"

// Path is a decoded offset key: the address of one leaf.
type Path struct {
	BlockKey     string // Owning block
	DecoratorKey int    // Decorator segment index within the block tree
	LeafKey      int    // Leaf index within the decorator segment
}

// String returns the encoded form of the path.
func (p Path) String() string {
	return Encode(p)
}

// Encode builds the offset key for a path.
func Encode(p Path) string {
	var sb strings.Builder
	sb.Grow(len(p.BlockKey) + 8)
	sb.WriteString(p.BlockKey)
	sb.WriteString(Delimiter)
	sb.WriteString(strconv.Itoa(p.DecoratorKey))
	sb.WriteString(Delimiter)
	sb.WriteString(strconv.Itoa(p.LeafKey))
	return sb.String()
}

// Decode splits an offset key into its path.
// The leaf and decorator parts are taken from the right; everything before
// them is the block key.
func Decode(key string) (Path, error) {
	if key == "" {
		return Path{}, malformed(key, "empty key")
	}

	i := strings.LastIndex(key, Delimiter)
	if i < 0 {
		return Path{}, malformed(key, "missing leaf part")
	}
	leafPart := key[i+1:]
	rest := key[:i]

	j := strings.LastIndex(rest, Delimiter)
	if j < 0 {
		return Path{}, malformed(key, "missing decorator part")
	}
	decoratorPart := rest[j+1:]
	blockKey := rest[:j]

	if blockKey == "" {
		return Path{}, malformed(key, "empty block key")
	}

	decoratorKey, ok := parseIndex(decoratorPart)
	if !ok {
		return Path{}, malformed(key, "decorator part is not a non-negative integer")
	}
	leafKey, ok := parseIndex(leafPart)
	if !ok {
		return Path{}, malformed(key, "leaf part is not a non-negative integer")
	}

	return Path{
		BlockKey:     blockKey,
		DecoratorKey: decoratorKey,
		LeafKey:      leafKey,
	}, nil
}

// MustDecode is like Decode but panics on malformed keys.
// Intended for fixtures and tests.
func MustDecode(key string) Path {
	p, err := Decode(key)
	if err != nil {
		panic(err)
	}
	return p
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	// Reject signs; Atoi would accept "+1" and "-1".
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
