package tagrm

import "strings"

// stripV removes a single leading lowercase "v".
// "vv1.2.3" keeps its second "v" so it never parses as a release.
func stripV(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// hasLeadingV reports whether s starts with 'v' or 'V'.
func hasLeadingV(s string) bool {
	return len(s) > 0 && (s[0] == 'v' || s[0] == 'V')
}
