package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxLength is the rune limit applied to analysis text.
	DefaultMaxLength = 2000

	// MinLength is the shortest trimmed text that is worth analyzing.
	MinLength = 10
)

// Text canonicalizes s, collapses whitespace, trims it and truncates it to
// maxLen runes. A maxLen of zero or less disables truncation.
func Text(s string, maxLen int) string {
	s = norm.NFC.String(s)
	s = CollapseSpace(s)
	return Truncate(s, maxLen)
}

// CollapseSpace replaces every run of Unicode whitespace with one ASCII space
// and trims both ends.
func CollapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = sb.Len() > 0
			continue
		}
		if pendingSpace {
			sb.WriteByte(' ')
			pendingSpace = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Truncate returns the first maxLen runes of s.
// The cut never splits a multi-byte character.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	count := 0
	for i := range s {
		if count == maxLen {
			return strings.TrimRightFunc(s[:i], unicode.IsSpace)
		}
		count++
	}
	return s
}

// LongEnough reports whether s has at least MinLength runes after trimming.
func LongEnough(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinLength
}
