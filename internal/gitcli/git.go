// Package gitcli implements tagrm.Backend by running the git executable.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/woozymasta/tagrm"
)

// Client runs git in Dir. The zero value uses the current directory,
// the "git" binary from PATH and ExecExecutor.
type Client struct {
	Exec   Executor
	Dir    string
	Binary string
}

// New returns a Client for the repository at dir.
func New(dir string) *Client {
	return &Client{
		Exec:   ExecExecutor{},
		Dir:    dir,
		Binary: "git",
	}
}

// ListTags runs "git tag -l".
func (c *Client) ListTags(ctx context.Context) (string, error) {
	out, _, err := c.run(ctx, "tag", "-l")
	if err != nil {
		return "", err
	}

	return out, nil
}

// DeleteRemoteTag runs "git push <remote> :refs/tags/<tag>".
//
// Deleting a fully qualified ref that the remote does not have succeeds with
// only a warning, so that warning is reported as tagrm.ErrRefNotFound.
func (c *Client) DeleteRemoteTag(ctx context.Context, remote, tag string) error {
	args := []string{"push", remote, ":refs/tags/" + tag}

	_, stderr, err := c.run(ctx, args...)
	if err != nil {
		return err
	}

	if line, ok := findLine(stderr, "deleting a non-existent ref"); ok {
		return fmt.Errorf("%w: %w", tagrm.ErrRefNotFound, &CommandError{Args: args, Stderr: line})
	}

	return nil
}

// DeleteLocalTag runs "git tag -d <tag>".
func (c *Client) DeleteLocalTag(ctx context.Context, tag string) error {
	_, _, err := c.run(ctx, "tag", "-d", tag)
	return err
}

func (c *Client) run(ctx context.Context, args ...string) (string, string, error) {
	ex := c.Exec
	if ex == nil {
		ex = ExecExecutor{}
	}

	bin := c.Binary
	if bin == "" {
		bin = "git"
	}

	stdout, stderr, err := ex.Run(ctx, c.Dir, bin, args...)
	if err != nil {
		return "", stderr, classify(args, stderr, err)
	}

	return stdout, stderr, nil
}

// findLine returns the first stderr line containing substr, case-insensitively.
func findLine(stderr, substr string) (string, bool) {
	for _, line := range strings.Split(stderr, "\n") {
		if strings.Contains(strings.ToLower(line), substr) {
			return strings.TrimSpace(line), true
		}
	}

	return "", false
}

// classify maps git failures onto tagrm sentinels where git's wording is
// stable; anything else stays a plain *CommandError.
func classify(args []string, stderr string, err error) error {
	cmdErr := &CommandError{Args: args, Stderr: stderr, Err: err}
	lower := strings.ToLower(stderr)

	switch {
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("%w: %w", tagrm.ErrBackendUnavailable, cmdErr)

	case strings.Contains(lower, "not a git repository"):
		return fmt.Errorf("%w: %w", tagrm.ErrBackendUnavailable, cmdErr)

	case strings.Contains(lower, "remote ref does not exist"):
		return fmt.Errorf("%w: %w", tagrm.ErrRefNotFound, cmdErr)

	case strings.Contains(lower, "error: tag '") && strings.Contains(lower, "' not found"):
		return fmt.Errorf("%w: %w", tagrm.ErrRefNotFound, cmdErr)

	default:
		return cmdErr
	}
}
