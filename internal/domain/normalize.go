package domain

import (
	"slices"
	"strings"
)

// NormalizeQuery prepares missing-request query text for keying:
// trimmed and lower-cased.
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// TrimOrEmpty trims s; a nil pointer yields "".
func TrimOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// UniqueSortedNonEmpty trims values, drops empties and duplicates
// (case-sensitively) and sorts the rest.
func UniqueSortedNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
