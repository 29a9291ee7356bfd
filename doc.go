/*
Package tagrm (Tag ReMover) classifies, groups, selects and deletes git tags.

The package is backend-agnostic: git access and user prompts are passed in
through the Backend and Prompter interfaces. Typical flow:

 1. List raw tags through a Backend (see ListTags).
 2. Classify them into release tags (SemVer) or beta tags
    (<prefix>beta-<branch>.<sequence>).
 3. Build a Grouping for the chosen Mode and let the user pick a group,
    a single tag, or a virtual selection (all tags, everything before a cutoff).
 4. Delete the confirmed tags one by one, remote first, then local,
    each git call bounded by a timeout, asking Retry/Abort on failure.

Session ties the steps together:

	s := &tagrm.Session{
		Backend:  gitcli.New("."),
		Prompter: prompt.New(os.Stdin, os.Stdout),
		Options:  tagrm.Options{Mode: tagrm.ModeRelease},
		Out:      os.Stdout,
	}

	report, err := s.Run(ctx)

SemVer notes:
  - A single leading "v" is accepted on release tags.
  - Shorthand X and X.Y are not release tags; a full MAJOR.MINOR.PATCH is required.
  - Cutoff comparison uses SemVer precedence and ignores build metadata.

Beta notes:
  - Branch and sequence are taken from "beta-<branch>.<n>"; the sequence must
    also be the trailing ".<n>" of the tag, otherwise the tag is dropped.
  - Groups are ordered by branch name; tags inside a group by sequence.
*/
package tagrm
