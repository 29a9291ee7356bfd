package tagrm

import (
	"strings"
)

// splitLines splits backend output into trimmed, non-empty lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, strings.Count(s, "\n")+1)
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return out
}

// filterSubstring keeps the entries containing sub; empty sub keeps all.
func filterSubstring(in []string, sub string) []string {
	if sub == "" {
		return in
	}

	out := in[:0:0]
	for _, s := range in {
		if strings.Contains(s, sub) {
			out = append(out, s)
		}
	}

	return out
}

// joinComma joins parts with ", ". Extracted for labels.
func joinComma(parts []string) string {
	switch len(parts) {
	case 0:
		return ""

	case 1:
		return parts[0]

	default:
		var b strings.Builder
		for i, p := range parts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p)
		}

		return b.String()
	}
}
