package tagrm

import "regexp"

var (
	// Beta tag: "<prefix>beta-<branch>.<sequence>"; captures branch and sequence.
	betaRe = regexp.MustCompile(`beta-([a-zA-Z0-9-]+)\.(\d+)`)

	// Trailing ".<digits>" of a tag, used to cross-check the beta sequence.
	trailingSeqRe = regexp.MustCompile(`\.(\d+)$`)
)
