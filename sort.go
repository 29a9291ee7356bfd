package tagrm

import (
	"sort"

	"github.com/woozymasta/semver"
)

// SortReleases returns a copy ordered ascending by SemVer precedence.
// Equal versions (e.g. "1.2.3" and "v1.2.3") are all kept in input order.
func SortReleases(in []ReleaseTag) []ReleaseTag {
	out := append([]ReleaseTag(nil), in...)
	if len(out) < 2 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compareVersions(out[i].Version, out[j].Version) < 0
	})

	return out
}

// compareVersions compares by precedence only: MAJOR.MINOR.PATCH and prerelease.
// Build metadata and the original string never break ties.
func compareVersions(a, b semver.Semver) int {
	return precedenceKey(a).Compare(precedenceKey(b))
}

// precedenceKey rebuilds v without build metadata or original text.
func precedenceKey(v semver.Semver) semver.Semver {
	flags := semver.FlagHasMajor | semver.FlagHasMinor | semver.FlagHasPatch
	if v.Prerelease != "" {
		flags |= semver.FlagHasPre
	}

	return semver.Semver{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: v.Prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
