package resolve

import "unicode/utf8"

// DefaultMaxSnippetChars bounds fallback snippets.
const DefaultMaxSnippetChars = 600

// TruncationMarker is appended to snippets that were cut.
const TruncationMarker = "…"

// Truncate returns s unchanged when it has at most max characters (runes).
// Otherwise it keeps the first max runes and appends TruncationMarker, never
// splitting a UTF-8 sequence.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i] + TruncationMarker
		}
		n++
	}
	return s
}
