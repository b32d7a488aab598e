package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles the text formatter renders a matched
// path's components with.
type Styles struct {
	Dir  lipgloss.Style
	File lipgloss.Style
}

// NewStyles returns the default color styles.
func NewStyles() Styles {
	return Styles{
		Dir:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true), // blue
		File: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),            // green
	}
}

// NoStyles returns styles that render plain, uncolored text.
func NoStyles() Styles {
	return Styles{
		Dir:  lipgloss.NewStyle(),
		File: lipgloss.NewStyle(),
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal,
// using go-isatty for portable detection — unlike the teacher's
// unix.IoctlGetTermios check, this works the same on every platform the
// standard library targets, not just Linux.
func StdoutIsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
