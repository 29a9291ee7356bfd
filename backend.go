package tagrm

import "context"

// Backend is the version-control capability the engine needs.
// Implementations should honor ctx cancellation; the engine also enforces
// its own per-call timeout.
type Backend interface {
	// ListTags returns every tag name, one per line.
	ListTags(ctx context.Context) (string, error)

	// DeleteRemoteTag removes refs/tags/<tag> from the named remote.
	// It returns an error wrapping ErrRefNotFound when the ref is absent.
	DeleteRemoteTag(ctx context.Context, remote, tag string) error

	// DeleteLocalTag removes the tag from the local repository.
	// It returns an error wrapping ErrRefNotFound when the tag is absent.
	DeleteLocalTag(ctx context.Context, tag string) error
}

// Choice is one entry of a single-select question.
type Choice struct {
	Label string
	Value string
}

// Prompter asks the user to pick exactly one of choices and returns its Value.
// It returns ErrPromptCancelled when the user dismisses the question.
type Prompter interface {
	Ask(ctx context.Context, question string, choices []Choice) (string, error)
}
