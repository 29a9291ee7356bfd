package gitcli

import (
	"context"
	"strings"
)

// mockExecutor records invocations and replays canned results.
type mockExecutor struct {
	RunFn  func(args []string) (string, string, error)
	Dirs   []string
	Calls  [][]string
	Binary string
}

func (m *mockExecutor) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	m.Binary = name
	m.Dirs = append(m.Dirs, dir)
	m.Calls = append(m.Calls, append([]string(nil), args...))

	if m.RunFn != nil {
		return m.RunFn(args)
	}

	return "", "", nil
}

func (m *mockExecutor) Commands() []string {
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		out = append(out, strings.Join(c, " "))
	}

	return out
}
