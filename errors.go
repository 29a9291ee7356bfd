package tagrm

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable means tags cannot be listed at all
	// (not a repository, git missing). Fatal.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrTagOperationFailed marks a failed or timed out delete step.
	ErrTagOperationFailed = errors.New("tag operation failed")

	// ErrUserAborted is returned when the user aborts the deletion queue.
	ErrUserAborted = errors.New("operation aborted by the user")

	// ErrNoMatchingTags is informational: a selection resolved to nothing.
	ErrNoMatchingTags = errors.New("no matching tags")

	// ErrTimeout is wrapped when a backend call exceeds its time budget.
	ErrTimeout = errors.New("operation timed out")

	// ErrRefNotFound is reported by backends when the tag is already absent.
	ErrRefNotFound = errors.New("ref not found")

	// ErrPromptCancelled is returned by a Prompter when the user dismisses the question.
	ErrPromptCancelled = errors.New("prompt cancelled")
)

// Step identifies one half of a tag deletion.
type Step uint8

const (
	// StepRemote deletes the ref on the remote.
	StepRemote Step = iota
	// StepLocal deletes the ref in the local repository.
	StepLocal
)

// String returns a stable textual representation for Step.
func (s Step) String() string {
	if s == StepLocal {
		return "local"
	}

	return "remote"
}

// TagError is a failed delete step for a single tag.
// It matches both ErrTagOperationFailed and the underlying cause.
type TagError struct {
	Tag  string
	Step Step
	Err  error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("delete %s tag %s: %v", e.Step, e.Tag, e.Err)
}

func (e *TagError) Unwrap() []error {
	return []error{ErrTagOperationFailed, e.Err}
}
