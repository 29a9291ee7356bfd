package tagrm

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	workStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
)

// console writes styled, user-facing lines. A nil writer discards output.
type console struct {
	w io.Writer
}

func (c console) line(style lipgloss.Style, format string, args ...any) {
	if c.w == nil {
		return
	}
	fmt.Fprintln(c.w, style.Render(fmt.Sprintf(format, args...)))
}

func (c console) ok(format string, args ...any)   { c.line(okStyle, format, args...) }
func (c console) fail(format string, args ...any) { c.line(failStyle, format, args...) }
func (c console) note(format string, args ...any) { c.line(noteStyle, format, args...) }
func (c console) work(format string, args ...any) { c.line(workStyle, format, args...) }

// list prints tags one per line, indented.
func (c console) list(tags []string) {
	if c.w == nil {
		return
	}
	for _, t := range tags {
		fmt.Fprintln(c.w, "  "+t)
	}
}
