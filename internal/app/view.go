package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zelkova-tui/zelkova/internal/ui/statusbar"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sidebarView := m.sidebar.View()
	mainView := m.renderMain(m.width - lipgloss.Width(sidebarView))

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, mainView)

	toastVisible, toastOverflowing := m.toastHintState()
	sb := statusbar.New("ZELKOVA", statusbar.GetHints(toastVisible, toastOverflowing), m.width, m.styles)

	return lipgloss.JoinVertical(lipgloss.Left, content, sb.Render())
}

// renderMain renders the main pane with the toast stack overlaid in
// its bottom-right corner.
func (m Model) renderMain(width int) string {
	if width < 1 {
		width = 1
	}

	header := m.styles.MainPane.Render("Zelkova notification shell")
	bodyHeight := m.contentHeight() - lipgloss.Height(header)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	body := lipgloss.Place(
		width,
		bodyHeight,
		lipgloss.Right,
		lipgloss.Bottom,
		m.renderToasts(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// renderToasts stacks live toasts vertically, newest at the bottom,
// aligned to the right edge.
func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}

	var rendered []string
	for _, e := range m.toasts {
		if view := e.model.View(); view != "" {
			rendered = append(rendered, view)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// toastHintState reports whether a toast is focused and whether it
// offers a toggle, for the status bar hints.
func (m Model) toastHintState() (visible, overflowing bool) {
	if len(m.toasts) == 0 {
		return false, false
	}
	newest := m.toasts[len(m.toasts)-1].model
	return true, newest.Overflowing()
}
