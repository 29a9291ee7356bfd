package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/woozymasta/tagrm"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6"))
	chosenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

// model is a single-select list. It quits on select or cancel.
type model struct {
	question  string
	choices   []tagrm.Choice
	cursor    int
	chosen    int
	cancelled bool
}

func newModel(question string, choices []tagrm.Choice) model {
	return model{question: question, choices: choices, chosen: -1}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(km, keys.Select):
		if len(m.choices) > 0 {
			m.chosen = m.cursor
		}
		return m, tea.Quit

	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else if n := len(m.choices); n > 0 {
			m.cursor = n - 1
		}

	case key.Matches(km, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case key.Matches(km, keys.Top):
		m.cursor = 0

	case key.Matches(km, keys.Bottom):
		if n := len(m.choices); n > 0 {
			m.cursor = n - 1
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("? " + m.question))

	// Once answered only the answer stays on screen.
	if m.chosen >= 0 {
		b.WriteString(" " + chosenStyle.Render(m.choices[m.chosen].Label) + "\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString(" " + helpStyle.Render("cancelled") + "\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + c.Label))
		} else {
			b.WriteString("  " + c.Label)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(keys.helpLine()) + "\n")

	return b.String()
}

// answer returns the chosen value or false when nothing was chosen.
func (m model) answer() (string, bool) {
	if m.cancelled || m.chosen < 0 || m.chosen >= len(m.choices) {
		return "", false
	}

	return m.choices[m.chosen].Value, true
}
