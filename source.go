package tagrm

import (
	"context"
	"errors"
	"fmt"
)

// ListTags invokes the backend listing once and returns the non-empty tag
// names, keeping only those containing filter when it is not empty.
// Any listing failure is wrapped in ErrBackendUnavailable.
func ListTags(ctx context.Context, b Backend, filter string) ([]string, error) {
	out, err := b.ListTags(ctx)
	if err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		return nil, fmt.Errorf("%w: list tags: %w", ErrBackendUnavailable, err)
	}

	return filterSubstring(splitLines(out), filter), nil
}
