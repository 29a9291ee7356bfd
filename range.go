package tagrm

// Before returns the tags strictly lower than cutoff by SemVer precedence.
// The cutoff itself and any tag of equal precedence are excluded.
// Input order is preserved.
func Before(tags []ReleaseTag, cutoff ReleaseTag) []ReleaseTag {
	ceil := precedenceKey(cutoff.Version)

	keep := make([]ReleaseTag, 0, len(tags))
	for _, t := range tags {
		if precedenceKey(t.Version).Compare(ceil) >= 0 {
			continue
		}
		keep = append(keep, t)
	}

	return keep
}
