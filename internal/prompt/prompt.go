// Package prompt implements tagrm.Prompter as a terminal single-select list.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/woozymasta/tagrm"
)

// Terminal asks questions on In/Out with a bubbletea program per question.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// New returns a Terminal reading keys from in and drawing on out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

// Ask implements tagrm.Prompter.
func (t *Terminal) Ask(ctx context.Context, question string, choices []tagrm.Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("ask %q: no choices", question)
	}

	p := tea.NewProgram(newModel(question, choices),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return "", tagrm.ErrPromptCancelled
		}
		return "", fmt.Errorf("ask %q: %w", question, err)
	}

	m, ok := final.(model)
	if !ok {
		return "", fmt.Errorf("ask %q: unexpected model %T", question, final)
	}

	value, ok := m.answer()
	if !ok {
		return "", tagrm.ErrPromptCancelled
	}

	return value, nil
}
