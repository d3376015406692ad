package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether substr occurs in s under Unicode case folding
func ContainsFold(s, substr string) bool {
	// A Caser keeps state, so each call gets its own
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// Relevance scores a match: RelevanceTitle when the query occurs in the
// title, RelevanceText otherwise.
func Relevance(title, query string) int {
	if ContainsFold(title, query) {
		return RelevanceTitle
	}
	return RelevanceText
}

// IsBlank reports whether a query has no searchable content
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// LikePattern builds a LIKE pattern matching query as a substring, with
// '!' as the escape character for %, _ and ! inside the query. Non-ASCII
// runes become the single-character wildcard '_', since SQLite's LOWER and
// LIKE fold ASCII only; callers apply LOWER to both sides and narrow the
// rows with MatchesAny afterwards.
func LikePattern(query string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range query {
		switch {
		case r == '!' || r == '%' || r == '_':
			b.WriteByte('!')
			b.WriteRune(r)
		case r > unicode.MaxASCII:
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('%')
	return b.String()
}

// MatchesAny reports whether query occurs in any of fields under Unicode
// case folding
func MatchesAny(query string, fields ...string) bool {
	for _, f := range fields {
		if ContainsFold(f, query) {
			return true
		}
	}
	return false
}
