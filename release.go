package tagrm

import "github.com/woozymasta/semver"

// ReleaseTag is a tag whose name (one leading "v" stripped) is a full SemVer.
type ReleaseTag struct {
	Raw     string
	Version semver.Semver
}

// ClassifyReleases keeps the tags that parse as MAJOR.MINOR.PATCH[-pre][+build],
// optionally prefixed with a single "v". Input order is preserved.
func ClassifyReleases(tags []string) []ReleaseTag {
	out := make([]ReleaseTag, 0, len(tags))
	for _, t := range tags {
		v, ok := parseRelease(t)
		if !ok {
			continue
		}
		out = append(out, ReleaseTag{Raw: t, Version: v})
	}

	return out
}

// parseRelease parses once and rejects shorthand X / X.Y forms.
func parseRelease(tag string) (semver.Semver, bool) {
	bare := stripV(tag)
	if bare == "" || hasLeadingV(bare) {
		return semver.Semver{}, false
	}

	v, ok := semver.Parse(bare)
	if !ok || !v.IsValid() || !v.HasPatch() {
		return semver.Semver{}, false
	}
	v.Original = tag

	return v, true
}

// rawNames projects release tags back to their original names.
func rawNames(in []ReleaseTag) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		out = append(out, r.Raw)
	}

	return out
}
