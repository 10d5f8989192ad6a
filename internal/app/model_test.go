package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelkova-tui/zelkova/internal/config"
	"github.com/zelkova-tui/zelkova/internal/types"
)

const longText = "A message long enough to wrap past the three collapsed " +
	"lines of a forty column toast, which takes a surprising amount of " +
	"words when the box is this wide, so here are some more of them just " +
	"to be safe and then a few extra for good measure"

func newTestModel() Model {
	m := NewModel(config.DefaultConfig())
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Model)
}

func showToast(t *testing.T, m Model, toast types.Toast) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(types.ShowToastMsg{Toast: toast})
	return model.(Model), cmd
}

func TestShowToast_MountsAndSchedulesExpiry(t *testing.T) {
	m := newTestModel()

	m, cmd := showToast(t, m, types.Toast{Text: "hello", Severity: types.SeveritySuccess})

	require.Len(t, m.toasts, 1)
	assert.NotNil(t, cmd, "auto-hide timer should be scheduled")
	assert.Len(t, m.sidebar.History(), 1, "notification should be recorded in the sidebar history")
}

func TestToastExpiry_Dismisses(t *testing.T) {
	m := newTestModel()
	m, _ = showToast(t, m, types.Toast{Text: "hello"})

	model, _ := m.Update(toastExpiredMsg{id: 0})
	m = model.(Model)

	assert.Empty(t, m.toasts, "expired toast should be unmounted")
}

func TestToastExpiry_RedundantTimerIsNoOp(t *testing.T) {
	m := newTestModel()
	m, _ = showToast(t, m, types.Toast{Text: "hello"})

	model, _ := m.Update(toastExpiredMsg{id: 0})
	m = model.(Model)
	model, _ = m.Update(toastExpiredMsg{id: 0})
	m = model.(Model)

	assert.Empty(t, m.toasts)
}

func TestToastExpiry_StaleTimerDoesNotDismissNewerToast(t *testing.T) {
	m := newTestModel()
	m, _ = showToast(t, m, types.Toast{Text: "first"})
	model, _ := m.Update(toastExpiredMsg{id: 0})
	m = model.(Model)
	m, _ = showToast(t, m, types.Toast{Text: "second"})

	// The first toast's timer fires again after its toast is gone.
	model, _ = m.Update(toastExpiredMsg{id: 0})
	m = model.(Model)

	require.Len(t, m.toasts, 1)
	assert.Equal(t, "second", m.toasts[0].model.Toast().Text)
}

func TestKeyRouting_ToggleAndDismissNewestToast(t *testing.T) {
	m := newTestModel()
	m, _ = showToast(t, m, types.Toast{Text: longText})
	require.True(t, m.toasts[0].model.Overflowing())

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)
	assert.True(t, m.toasts[0].model.Expanded(), "enter should expand the newest toast")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(Model)
	assert.Empty(t, m.toasts, "x should dismiss and unmount the newest toast")
}

func TestSidebarToggleKey(t *testing.T) {
	m := newTestModel()
	require.True(t, m.sidebar.Open())

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = model.(Model)

	assert.False(t, m.sidebar.Open())
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDemoToastKey(t *testing.T) {
	m := newTestModel()

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = model.(Model)

	assert.Len(t, m.toasts, 1)
}

func TestWindowResize_RemeasuresToasts(t *testing.T) {
	m := newTestModel()
	m, _ = showToast(t, m, types.Toast{Text: longText})
	require.True(t, m.toasts[0].model.Overflowing())

	// A very wide window gives the toast enough room to fit.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 500, Height: 24})
	m = model.(Model)

	assert.True(t, m.toasts[0].model.Overflowing(), "width is capped by config, overflow decision is stable")

	// Before first layout, nothing overflows.
	fresh := NewModel(config.DefaultConfig())
	fresh, _ = showToast(t, fresh, types.Toast{Text: longText})
	assert.False(t, fresh.toasts[0].model.Overflowing())
}

func TestConfigReload_AppliesTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelkova.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\n"), 0o644))

	m := newTestModel()
	model, _ := m.Update(types.ConfigFileChangedMsg{Path: path})
	m = model.(Model)

	assert.Equal(t, "light", m.theme.Name)
	assert.Empty(t, m.toasts)
}

func TestConfigReload_FailureShowsErrorToast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelkova.toml")
	require.NoError(t, os.WriteFile(path, []byte("toast = {{"), 0o644))

	m := newTestModel()
	model, _ := m.Update(types.ConfigFileChangedMsg{Path: path})
	m = model.(Model)

	require.Len(t, m.toasts, 1)
	assert.Equal(t, types.SeverityError, m.toasts[0].model.Toast().Severity)
}
