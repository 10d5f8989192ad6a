// Package sidebar renders the side panel with recent notification
// history. The panel owns no theme of its own: the shell passes it
// styles resolved from the sidebar-composed theme.
package sidebar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zelkova-tui/zelkova/internal/types"
	"github.com/zelkova-tui/zelkova/internal/ui/styles"
)

// historyLimit caps how many past notifications the panel remembers.
const historyLimit = 20

// Model is the sidebar panel state.
type Model struct {
	styles *styles.Styles
	width  int
	height int
	open   bool

	history []types.Toast
}

// New creates a sidebar. The styles must come from a theme composed
// with ComposeSidebarTheme so the chevron offset applies.
func New(st *styles.Styles, open bool) Model {
	return Model{
		styles: st,
		open:   open,
	}
}

// SetStyles swaps the resolved style set, used when the theme is
// hot-reloaded. History and visibility are preserved.
func (m *Model) SetStyles(st *styles.Styles) {
	m.styles = st
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Toggle flips the panel open or closed.
func (m *Model) Toggle() {
	m.open = !m.open
}

// Open reports whether the panel is visible.
func (m Model) Open() bool { return m.open }

// Record appends a notification to the history, evicting the oldest
// entry past the limit.
func (m *Model) Record(t types.Toast) {
	m.history = append(m.history, t)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// History returns the recorded notifications, oldest first.
func (m Model) History() []types.Toast { return m.history }

// View renders the panel. A closed panel renders only the chevron
// strip; a zero-width panel renders nothing.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	chevron := m.styles.SidebarChevron.Render("❯")
	if !m.open {
		return lipgloss.Place(2, m.height, lipgloss.Left, lipgloss.Top, chevron)
	}

	title := m.styles.SidebarTitle.Render("Notifications")
	innerWidth := m.width - m.styles.Sidebar.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Left, m.styles.SidebarChevron.Render("❮"), " ", title)}
	// Newest entries first, one line each.
	for i := len(m.history) - 1; i >= 0; i-- {
		line := truncate.StringWithTail(m.history[i].Body(), uint(innerWidth), "…")
		rows = append(rows, m.styles.SidebarItem.Render(line))
	}
	if len(m.history) == 0 {
		rows = append(rows, m.styles.SidebarItem.Render("No notifications yet"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.styles.Sidebar.
		Width(m.width).
		Height(m.height).
		Render(content)
}
