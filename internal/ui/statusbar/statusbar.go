// Package statusbar renders the one-line status bar at the bottom of
// the shell.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zelkova-tui/zelkova/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	badge  string
	hints  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given badge text, hints, width,
// and styles
func New(badge, hints string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		badge:  badge,
		hints:  hints,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.badge + " ")

	var content string
	if sb.hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		hints := sb.styles.StatusHint.Render(sb.hints)
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hints)
	} else {
		content = badge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
