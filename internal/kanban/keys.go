package kanban

import (
	"strings"
	"unicode"
)

// NormalizeKey turns a status label into a bucket key: trimmed, lowercase,
// whitespace runs replaced by a single hyphen
func NormalizeKey(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	return strings.Join(fields, "-")
}

// squash drops case, whitespace, hyphens and underscores so that
// "In Progress", "in-progress" and "IN_PROGRESS" compare equal
func squash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LooselyEqual compares two labels ignoring case and spacing
func LooselyEqual(a, b string) bool {
	return squash(a) == squash(b)
}
