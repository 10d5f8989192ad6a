package toast

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelkova-tui/zelkova/internal/types"
	"github.com/zelkova-tui/zelkova/internal/ui/styles"
)

const longText = "The quick brown fox jumps over the lazy dog again and again " +
	"and again until the message is comfortably longer than anything three " +
	"lines of a narrow toast could ever hope to hold on screen"

func newTestToast(t types.Toast, width int) Model {
	m := New(t, styles.New(styles.DarkTheme()), nil)
	m.SetWidth(width)
	return m
}

func TestShortMessage_NoToggle(t *testing.T) {
	m := newTestToast(types.Toast{Text: "Saved!"}, 30)

	assert.False(t, m.Overflowing())
	assert.Equal(t, StateNotOverflowing, m.State())

	view := m.View()
	assert.Contains(t, view, "Saved!", "full text should be visible")
	assert.NotContains(t, view, ViewMoreLabel, "short message must not offer a toggle")
	assert.Contains(t, view, CloseLabel, "close control is always present")
}

func TestShortMessage_WithIcon(t *testing.T) {
	m := newTestToast(types.Toast{Text: "Saved!", Icon: "🐶"}, 30)

	view := m.View()
	assert.Contains(t, view, "🐶 Saved!", "icon is prefixed with a single separating space")
	assert.NotContains(t, view, ViewMoreLabel)
}

func TestLongMessage_CollapsedByDefault(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 30)

	require.True(t, m.Overflowing(), "long message at width 30 should overflow three lines")
	assert.Equal(t, StateCollapsed, m.State())

	view := m.View()
	assert.Contains(t, view, ViewMoreLabel)
	assert.NotContains(t, view, ViewLessLabel)
}

func TestLongMessage_ClampIsStrictPrefix(t *testing.T) {
	wrapped := wrapToWidth(longText, 30)
	clamped := clampLines(wrapped, MaxLines)

	require.NotEqual(t, wrapped, clamped)
	assert.True(t, strings.HasPrefix(wrapped, clamped), "clamped text must be a strict prefix of the wrapped text")
	assert.Equal(t, MaxLines, len(strings.Split(clamped, "\n")))
}

func TestToggle_RoundTrip(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 30)

	collapsed := m.View()

	m.Toggle()
	assert.Equal(t, StateExpanded, m.State())
	expanded := m.View()
	assert.Contains(t, expanded, ViewLessLabel)
	assert.NotContains(t, expanded, ViewMoreLabel)
	assert.Greater(t, len(strings.Split(expanded, "\n")), len(strings.Split(collapsed, "\n")))

	m.Toggle()
	assert.Equal(t, StateCollapsed, m.State())
	assert.Equal(t, collapsed, m.View(), "collapse after expand must restore the original rendering")
}

func TestToggle_NoOpWhenNotOverflowing(t *testing.T) {
	m := newTestToast(types.Toast{Text: "short"}, 30)

	m.Toggle()

	assert.False(t, m.Expanded(), "toggle is ignored when the text fits")
	assert.Equal(t, StateNotOverflowing, m.State())
}

func TestDismiss_Idempotent(t *testing.T) {
	calls := 0
	m := New(types.Toast{Text: "bye"}, styles.New(styles.DarkTheme()), func() { calls++ })
	m.SetWidth(30)

	m.Dismiss()
	m.Dismiss()
	m.Dismiss()

	assert.Equal(t, 1, calls, "dismiss callback fires exactly once")
	assert.Equal(t, StateDismissed, m.State())
	assert.Equal(t, "", m.View(), "dismissed toast renders nothing")
}

func TestDismiss_NilCallback(t *testing.T) {
	m := newTestToast(types.Toast{Text: "bye"}, 30)

	assert.NotPanics(t, func() {
		m.Dismiss()
		m.Dismiss()
	})
}

func TestZeroWidth_TreatedAsNotOverflowing(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 0)

	assert.False(t, m.Overflowing(), "no measurement yet means no toggle")
	assert.NotContains(t, m.View(), ViewMoreLabel)

	// Layout settles, measurement confirms the overflow.
	m.SetWidth(30)
	assert.True(t, m.Overflowing())
	assert.Contains(t, m.View(), ViewMoreLabel)
}

func TestEmptyText_RendersControls(t *testing.T) {
	tests := []struct {
		name  string
		toast types.Toast
	}{
		{"Empty text", types.Toast{}},
		{"Empty text with icon", types.Toast{Icon: "🔥"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestToast(tt.toast, 30)
			view := m.View()
			assert.NotEmpty(t, view)
			assert.Contains(t, view, CloseLabel)
			if tt.toast.Icon != "" {
				assert.Contains(t, view, tt.toast.Icon)
			}
		})
	}
}

func TestUnknownSeverity_FallsBackToDefault(t *testing.T) {
	m := newTestToast(types.Toast{Text: "odd", Severity: types.Severity(42)}, 30)

	assert.NotPanics(t, func() { _ = m.View() })
	st := styles.New(styles.DarkTheme())
	assert.Equal(t, st.ToastDefault.GetBorderTopForeground(), m.styleForSeverity().GetBorderTopForeground())
}

func TestSetText_CollapsesAndRemeasures(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 30)
	m.Toggle()
	require.True(t, m.Expanded())

	m.SetText("now short")

	assert.False(t, m.Expanded(), "content change resets to collapsed")
	assert.False(t, m.Overflowing(), "overflow is re-derived for the new text")

	m.SetText(longText)
	assert.True(t, m.Overflowing())
	assert.Equal(t, StateCollapsed, m.State())
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 30)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Expanded(), "enter toggles expansion")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.True(t, m.Dismissed(), "x dismisses")

	// Keys after dismissal are ignored.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateDismissed, m.State())
}

func TestSetMaxLines_Clamped(t *testing.T) {
	m := newTestToast(types.Toast{Text: longText}, 30)

	m.SetMaxLines(0)
	assert.True(t, m.Overflowing())

	view := m.View()
	assert.Contains(t, view, ViewMoreLabel)
}

func TestWrapToWidth_HandlesWideRunes(t *testing.T) {
	wrapped := wrapToWidth(strings.Repeat("深夜のビルド ", 10), 12)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, contentWidth(line), 12, "no wrapped line may exceed the cell width limit")
	}
}
