package document

import (
	"strings"

	"github.com/google/uuid"
)

// blockKeyLen is the length of generated block keys.
const blockKeyLen = 5

// GenerateBlockKey returns a short random block key not present in seen.
// The key is recorded in seen before returning. Generated keys never
// contain the offset key delimiter.
func GenerateBlockKey(seen map[string]bool) string {
	for {
		key := strings.ReplaceAll(uuid.NewString(), "-", "")[:blockKeyLen]
		if !seen[key] {
			if seen != nil {
				seen[key] = true
			}
			return key
		}
	}
}
