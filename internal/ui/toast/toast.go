// Package toast implements a single notification with adaptive
// truncation: messages that wrap past a fixed line budget get a
// "view more" / "view less" toggle, short messages render unclamped.
package toast

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zelkova-tui/zelkova/internal/types"
	"github.com/zelkova-tui/zelkova/internal/ui/styles"
)

// MaxLines is the collapsed line budget.
const MaxLines = 3

// Control labels. These are the stable contract for tests and any
// external driver locating the controls.
const (
	ViewMoreLabel = "view more"
	ViewLessLabel = "view less"
	CloseLabel    = "Close"
)

// State describes where a toast is in its lifecycle.
type State int

const (
	StateNotOverflowing State = iota
	StateCollapsed
	StateExpanded
	StateDismissed
)

// Model is a single toast. The host container owns mounting,
// placement, and the auto-hide timer; the model owns truncation
// detection and the expand/collapse toggle.
type Model struct {
	toast  types.Toast
	styles *styles.Styles
	keys   KeyMap

	width    int
	maxLines int

	expanded    bool
	overflowing bool
	dismissed   bool

	onDismiss func()

	// wrapped caches the body wrapped at the current width; refreshed
	// by measure.
	wrapped string
}

// New creates a toast model. The model starts collapsed and unmeasured;
// until SetWidth delivers a real width it is treated as not
// overflowing, so no toggle flashes before layout settles. onDismiss
// may be nil.
func New(t types.Toast, st *styles.Styles, onDismiss func()) Model {
	m := Model{
		toast:     t,
		styles:    st,
		keys:      DefaultKeyMap(),
		maxLines:  MaxLines,
		onDismiss: onDismiss,
	}
	m.measure()
	return m
}

// SetWidth sets the content width and re-measures. Zero or negative
// widths mean layout is not available yet.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.measure()
}

// SetMaxLines overrides the collapsed line budget. Values below one
// are clamped to one.
func (m *Model) SetMaxLines(n int) {
	if n < 1 {
		n = 1
	}
	m.maxLines = n
	m.measure()
}

// SetStyles swaps the resolved style set, used when the theme is
// hot-reloaded. Measurement is unaffected.
func (m *Model) SetStyles(st *styles.Styles) {
	m.styles = st
}

// SetText replaces the message text. The toast collapses and
// re-measures: new content gets a fresh overflow decision.
func (m *Model) SetText(text string) {
	m.toast.Text = text
	m.expanded = false
	m.measure()
}

// measure runs the two-phase pipeline: wrap the body at the current
// width, then compare the wrapped height against the line budget.
func (m *Model) measure() {
	body := m.toast.Body()
	if m.width <= 0 {
		m.wrapped = body
		m.overflowing = false
		return
	}
	m.wrapped = wrapToWidth(body, m.width)
	m.overflowing = lipgloss.Height(m.wrapped) > m.maxLines
}

// Toggle flips between collapsed and expanded. It is a no-op when the
// message fits the line budget or the toast is dismissed.
func (m *Model) Toggle() {
	if !m.overflowing || m.dismissed {
		return
	}
	m.expanded = !m.expanded
}

// Dismiss marks the toast dismissed and fires the dismiss callback.
// Idempotent: repeat calls, including after the host unmounted the
// toast, do nothing.
func (m *Model) Dismiss() {
	if m.dismissed {
		return
	}
	m.dismissed = true
	if m.onDismiss != nil {
		m.onDismiss()
	}
}

// State returns the current lifecycle state.
func (m Model) State() State {
	switch {
	case m.dismissed:
		return StateDismissed
	case !m.overflowing:
		return StateNotOverflowing
	case m.expanded:
		return StateExpanded
	default:
		return StateCollapsed
	}
}

// Overflowing reports whether the message exceeds the line budget at
// the current width.
func (m Model) Overflowing() bool { return m.overflowing }

// Expanded reports whether the toast shows its full text.
func (m Model) Expanded() bool { return m.expanded }

// Dismissed reports whether the toast has been dismissed.
func (m Model) Dismissed() bool { return m.dismissed }

// Toast returns the underlying notification value.
func (m Model) Toast() types.Toast { return m.toast }

// Update handles key input routed to this toast by the host.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.dismissed {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Toggle):
			m.Toggle()
		case key.Matches(keyMsg, m.keys.Dismiss):
			m.Dismiss()
		}
	}
	return m, nil
}

// View renders the toast. A dismissed toast renders nothing.
func (m Model) View() string {
	if m.dismissed {
		return ""
	}

	body := m.wrapped
	if m.overflowing && !m.expanded {
		body = clampLines(body, m.maxLines)
	}

	controls := m.controlsView()
	content := controls
	if body != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, body, controls)
	}

	style := m.styleForSeverity()
	if m.overflowing {
		// Pin the box to the full wrapped width so toggling between
		// collapsed and expanded does not change the toast's footprint.
		style = style.Width(contentWidth(m.wrapped) + style.GetHorizontalPadding())
	}
	return style.Render(content)
}

// controlsView renders the control row: the toggle when the message
// overflows, then the close affordance.
func (m Model) controlsView() string {
	closeControl := m.styles.ToastClose.Render("✕ " + CloseLabel)
	if !m.overflowing {
		return closeControl
	}

	label := ViewMoreLabel
	if m.expanded {
		label = ViewLessLabel
	}
	toggle := m.styles.ToastControl.Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Left, toggle, "  ", closeControl)
}

// styleForSeverity returns the body style for the toast's severity.
// Severities outside the known set use the default style.
func (m Model) styleForSeverity() lipgloss.Style {
	switch m.toast.Severity {
	case types.SeveritySuccess:
		return m.styles.ToastSuccess
	case types.SeverityWarning:
		return m.styles.ToastWarning
	case types.SeverityError:
		return m.styles.ToastError
	default:
		return m.styles.ToastDefault
	}
}
