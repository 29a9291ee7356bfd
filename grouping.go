package tagrm

import (
	"context"
	"fmt"
	"strings"
)

// Menu values never collide with tag names: git refnames cannot contain ':'.
const (
	valueExit         = ":exit"
	valueAll          = ":all"
	valueBefore       = ":before"
	branchValuePrefix = ":branch:"
)

// Resolution is the concrete tag list behind a menu choice.
type Resolution struct {
	// Title describes the selection, e.g. "All version tags".
	Title string
	Tags  []string
}

// Grouping is a grouping strategy: it owns the classified tags of one Mode,
// renders them as a menu and resolves a chosen value to tags.
type Grouping interface {
	// Noun names the tags handled, e.g. "version tags".
	Noun() string

	// Empty reports whether classification found nothing.
	Empty() bool

	// Menu returns the top-level choices, virtual ones included, "Exit" last.
	Menu() []Choice

	// Resolve maps a menu value to tags. It may ask follow-up questions.
	// An empty result is reported as ErrNoMatchingTags.
	Resolve(ctx context.Context, p Prompter, value string) (Resolution, error)
}

// NewGrouping classifies tags for mode. For ModeBeta, dropped holds the
// malformed beta tags that were excluded.
func NewGrouping(mode Mode, tags []string) (Grouping, []string, error) {
	switch mode {
	case ModeBeta:
		groups, dropped := ClassifyBeta(tags)
		return &betaGrouping{groups: groups}, dropped, nil

	case ModeRelease:
		return &releaseGrouping{tags: SortReleases(ClassifyReleases(tags))}, nil, nil

	default:
		return nil, nil, fmt.Errorf("no grouping for mode %q", mode)
	}
}

var exitChoice = Choice{Label: "Exit", Value: valueExit}

type releaseGrouping struct {
	tags []ReleaseTag // ascending
}

func (g *releaseGrouping) Noun() string { return "version tags" }

func (g *releaseGrouping) Empty() bool { return len(g.tags) == 0 }

func (g *releaseGrouping) Menu() []Choice {
	out := make([]Choice, 0, len(g.tags)+3)
	out = append(out,
		Choice{Label: "All version tags", Value: valueAll},
		Choice{Label: "Everything before a version...", Value: valueBefore},
	)
	out = append(out, g.tagChoices()...)

	return append(out, exitChoice)
}

func (g *releaseGrouping) tagChoices() []Choice {
	out := make([]Choice, 0, len(g.tags))
	for _, t := range g.tags {
		out = append(out, Choice{Label: t.Raw, Value: t.Raw})
	}

	return out
}

func (g *releaseGrouping) lookup(raw string) (ReleaseTag, bool) {
	for _, t := range g.tags {
		if t.Raw == raw {
			return t, true
		}
	}

	return ReleaseTag{}, false
}

func (g *releaseGrouping) Resolve(ctx context.Context, p Prompter, value string) (Resolution, error) {
	switch value {
	case valueAll:
		return Resolution{Title: "All version tags", Tags: rawNames(g.tags)}, nil

	case valueBefore:
		picked, err := p.Ask(ctx, "Select the cutoff version (all tags before this will be deleted):", g.tagChoices())
		if err != nil {
			return Resolution{}, err
		}

		cutoff, ok := g.lookup(picked)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: unknown cutoff %q", ErrNoMatchingTags, picked)
		}

		before := Before(g.tags, cutoff)
		if len(before) == 0 {
			return Resolution{}, fmt.Errorf("%w before version %s", ErrNoMatchingTags, cutoff.Raw)
		}

		return Resolution{
			Title: fmt.Sprintf("Everything before version %s", cutoff.Raw),
			Tags:  rawNames(before),
		}, nil

	default:
		t, ok := g.lookup(value)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: unknown tag %q", ErrNoMatchingTags, value)
		}

		return Resolution{Title: "Selected tag " + t.Raw, Tags: []string{t.Raw}}, nil
	}
}

type betaGrouping struct {
	groups []BetaGroup // by branch name
}

func (g *betaGrouping) Noun() string { return "beta tags" }

func (g *betaGrouping) Empty() bool { return len(g.groups) == 0 }

func (g *betaGrouping) Menu() []Choice {
	out := make([]Choice, 0, len(g.groups)+2)
	for _, grp := range g.groups {
		out = append(out, Choice{
			Label: fmt.Sprintf("%s (%s)", grp.Branch, joinComma(grp.Names())),
			Value: branchValuePrefix + grp.Branch,
		})
	}
	out = append(out, Choice{Label: "All beta tags", Value: valueAll})

	return append(out, exitChoice)
}

func (g *betaGrouping) Resolve(_ context.Context, _ Prompter, value string) (Resolution, error) {
	if value == valueAll {
		var all []string
		for _, grp := range g.groups {
			all = append(all, grp.Names()...)
		}

		return Resolution{Title: "All beta tags", Tags: all}, nil
	}

	branch, ok := strings.CutPrefix(value, branchValuePrefix)
	if ok {
		for _, grp := range g.groups {
			if grp.Branch == branch {
				return Resolution{Title: "Beta tags of branch " + branch, Tags: grp.Names()}, nil
			}
		}
	}

	return Resolution{}, fmt.Errorf("%w: unknown beta group %q", ErrNoMatchingTags, value)
}
