package gitcli

import (
	"fmt"
	"strings"
)

// CommandError is a failed git invocation with its arguments and stderr.
type CommandError struct {
	Err    error
	Stderr string
	Args   []string
}

func (e *CommandError) Error() string {
	msg := "git " + strings.Join(e.Args, " ") + " failed"
	if s := firstLine(e.Stderr); s != "" {
		msg = fmt.Sprintf("%s: %s", msg, s)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// firstLine keeps diagnostics on a single line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}

	return s
}
