package tagrm

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// cancelAnswer makes scriptedPrompter return ErrPromptCancelled.
const cancelAnswer = "<cancel>"

// fakeBackend records calls; remote/local hooks decide each step's result.
type fakeBackend struct {
	listErr error
	remote  func(ctx context.Context, tag string, call int) error
	local   func(ctx context.Context, tag string, call int) error
	tags    string

	mu    sync.Mutex
	calls []string
	count map[string]int
}

func (b *fakeBackend) ListTags(context.Context) (string, error) {
	b.record("list")
	if b.listErr != nil {
		return "", b.listErr
	}

	return b.tags, nil
}

func (b *fakeBackend) DeleteRemoteTag(ctx context.Context, remote, tag string) error {
	n := b.record(fmt.Sprintf("remote:%s:%s", remote, tag))
	if b.remote != nil {
		return b.remote(ctx, tag, n)
	}

	return nil
}

func (b *fakeBackend) DeleteLocalTag(ctx context.Context, tag string) error {
	n := b.record("local:" + tag)
	if b.local != nil {
		return b.local(ctx, tag, n)
	}

	return nil
}

// record stores the call and returns how many times it was seen, 1-based.
func (b *fakeBackend) record(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == nil {
		b.count = make(map[string]int)
	}
	b.calls = append(b.calls, call)
	b.count[call]++

	return b.count[call]
}

func (b *fakeBackend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.calls...)
}

// scriptedPrompter answers questions from a fixed script.
type scriptedPrompter struct {
	t         *testing.T
	answers   []string
	questions []string
	menus     [][]Choice
}

func (p *scriptedPrompter) Ask(_ context.Context, question string, choices []Choice) (string, error) {
	p.t.Helper()

	p.questions = append(p.questions, question)
	p.menus = append(p.menus, choices)

	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected question %q", question)
	}

	a := p.answers[0]
	p.answers = p.answers[1:]

	if a == cancelAnswer {
		return "", ErrPromptCancelled
	}

	for _, c := range choices {
		if c.Value == a {
			return a, nil
		}
	}

	p.t.Fatalf("answer %q is not a choice of %q", a, question)
	return "", nil
}

// values lists the choice values of a menu.
func values(choices []Choice) []string {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.Value)
	}

	return out
}
