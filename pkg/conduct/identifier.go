package conduct

import "strings"

// GroupKeyCount is the number of group-key positions a compound identifier
// decomposes into: grade, then class.
const GroupKeyCount = 2

// DecomposeID splits a compound identifier into its leading group keys.
// "2414" yields ["2", "4"]: the first rune is the grade, the second the
// class. Keys stay strings so non-digit class codes compare correctly.
//
// The identifier is trimmed first. When it is shorter than GroupKeyCount
// runes, the missing trailing positions hold NoValue; DecomposeID never
// fails.
func DecomposeID(id string) []string {
	runes := []rune(strings.TrimSpace(id))
	keys := make([]string, GroupKeyCount)
	for i := range keys {
		if i < len(runes) {
			keys[i] = string(runes[i])
		} else {
			keys[i] = NoValue
		}
	}
	return keys
}
