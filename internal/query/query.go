package query

import "strings"

// Normalize trims surrounding whitespace from raw caller input. The boolean
// is false when nothing is left, in which case no resolution should run.
func Normalize(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", false
	}
	return q, true
}
