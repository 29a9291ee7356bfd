package tagrm

import (
	"sort"
	"strconv"
	"strings"
)

// BetaTag is a tag of the form "<prefix>beta-<branch>.<sequence>".
type BetaTag struct {
	Raw      string
	Branch   string
	Sequence uint64
}

// BetaGroup holds the beta tags of one branch, ascending by Sequence.
type BetaGroup struct {
	Branch string
	Tags   []BetaTag
}

// Names returns the raw tag names of the group in order.
func (g BetaGroup) Names() []string {
	out := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		out = append(out, t.Raw)
	}

	return out
}

// ClassifyBeta groups beta tags by branch.
//
// Tags that do not look like beta tags at all are skipped silently. Tags that
// mention "beta-" but whose branch pattern and trailing ".<n>" disagree (or
// are missing) are returned in dropped so callers can warn about them.
//
// Groups are ordered by branch name; each group is sorted ascending by
// sequence, ties broken by raw name.
func ClassifyBeta(tags []string) (groups []BetaGroup, dropped []string) {
	byBranch := make(map[string][]BetaTag)
	for _, t := range tags {
		bt, ok := parseBeta(t)
		if !ok {
			if strings.Contains(t, "beta-") {
				dropped = append(dropped, t)
			}
			continue
		}
		byBranch[bt.Branch] = append(byBranch[bt.Branch], bt)
	}

	groups = make([]BetaGroup, 0, len(byBranch))
	for branch, members := range byBranch {
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Sequence != members[j].Sequence {
				return members[i].Sequence < members[j].Sequence
			}
			return members[i].Raw < members[j].Raw
		})
		groups = append(groups, BetaGroup{Branch: branch, Tags: members})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Branch < groups[j].Branch })

	return groups, dropped
}

// parseBeta extracts branch and sequence. The sequence captured by the beta
// pattern must be the very same trailing ".<n>" of the tag.
func parseBeta(tag string) (BetaTag, bool) {
	m := betaRe.FindStringSubmatchIndex(tag)
	if m == nil {
		return BetaTag{}, false
	}

	tail := trailingSeqRe.FindStringSubmatchIndex(tag)
	if tail == nil || tail[2] != m[4] || tail[3] != m[5] {
		return BetaTag{}, false
	}

	seq, err := strconv.ParseUint(tag[m[4]:m[5]], 10, 64)
	if err != nil {
		return BetaTag{}, false
	}

	return BetaTag{Raw: tag, Branch: tag[m[2]:m[3]], Sequence: seq}, true
}
