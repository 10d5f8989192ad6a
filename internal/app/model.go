// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zelkova-tui/zelkova/internal/config"
	"github.com/zelkova-tui/zelkova/internal/services/themewatch"
	"github.com/zelkova-tui/zelkova/internal/types"
	"github.com/zelkova-tui/zelkova/internal/ui/sidebar"
	"github.com/zelkova-tui/zelkova/internal/ui/styles"
	"github.com/zelkova-tui/zelkova/internal/ui/toast"
)

// KeyMap holds the shell-level key bindings.
type KeyMap struct {
	Quit      key.Binding
	Sidebar   key.Binding
	DemoToast key.Binding
}

// DefaultKeyMap returns the default shell key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sidebar"),
		),
		DemoToast: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "test toast"),
		),
	}
}

// toastEntry pairs a mounted toast with the ID its auto-hide timer
// carries, so a stale timer cannot dismiss a later toast.
type toastEntry struct {
	id    int
	model toast.Model
}

// toastExpiredMsg is sent when a toast's auto-hide timer fires.
type toastExpiredMsg struct {
	id int
}

// Model is the main application state: the notification container that
// mounts toasts, runs their auto-hide timers, and routes input.
type Model struct {
	cfg        *config.Config
	configPath string

	theme  styles.Theme
	styles *styles.Styles

	width  int
	height int

	toasts      []toastEntry
	nextToastID int

	sidebar sidebar.Model
	keys    KeyMap

	watcher *themewatch.Watcher
	logger  *slog.Logger

	demo bool
}

// Option configures the model.
type Option func(*Model)

// WithWatcher attaches a config file watcher for theme hot-reload.
func WithWatcher(w *themewatch.Watcher, configPath string) Option {
	return func(m *Model) {
		m.watcher = w
		m.configPath = configPath
	}
}

// WithDemo seeds the shell with sample toasts on startup.
func WithDemo() Option {
	return func(m *Model) {
		m.demo = true
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates the shell model from a loaded config.
func NewModel(cfg *config.Config, opts ...Option) Model {
	theme := styles.ThemeByName(cfg.Theme)

	m := Model{
		cfg:    cfg,
		theme:  theme,
		styles: styles.New(theme),
		keys:   DefaultKeyMap(),
		logger: slog.Default(),
	}
	m.sidebar = sidebar.New(styles.New(styles.ComposeSidebarTheme(theme)), cfg.Sidebar.StartOpen)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ShowToast returns a command that mounts a toast in the shell.
func ShowToast(t types.Toast) tea.Cmd {
	return func() tea.Msg {
		return types.ShowToastMsg{Toast: t}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForConfigChange()}
	if m.demo {
		for _, t := range demoToasts() {
			cmds = append(cmds, ShowToast(t))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil

	case types.ShowToastMsg:
		return m.showToast(msg.Toast)

	case toastExpiredMsg:
		m.dismissToast(msg.id)
		return m, nil

	case types.ToggleSidebarMsg:
		m.sidebar.Toggle()
		return m, nil

	case types.ConfigFileChangedMsg:
		return m.reloadConfig(msg.Path)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keys: shell bindings first, everything else to the
// newest live toast.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Sidebar):
		m.sidebar.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.DemoToast):
		return m.showToast(nextDemoToast(m.nextToastID))
	}

	if n := len(m.toasts); n > 0 {
		updated, cmd := m.toasts[n-1].model.Update(msg)
		m.toasts[n-1].model = updated
		m.pruneDismissed()
		return m, cmd
	}
	return m, nil
}

// showToast mounts a toast and schedules its auto-hide timer.
func (m Model) showToast(t types.Toast) (tea.Model, tea.Cmd) {
	id := m.nextToastID
	m.nextToastID++

	logger := m.logger
	model := toast.New(t, m.styles, func() {
		logger.Debug("toast dismissed", "severity", t.Severity.String())
	})
	model.SetMaxLines(m.cfg.Toast.MaxLines)
	model.SetWidth(m.toastContentWidth())

	m.toasts = append(m.toasts, toastEntry{id: id, model: model})
	m.sidebar.Record(t)
	m.logger.Info("toast shown", "severity", t.Severity.String(), "len", len(t.Text))

	duration := m.cfg.Toast.Duration()
	return m, tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// dismissToast dismisses the entry with the given ID. Expired timers
// for toasts that are already gone are no-ops.
func (m *Model) dismissToast(id int) {
	for i := range m.toasts {
		if m.toasts[i].id == id {
			m.toasts[i].model.Dismiss()
			break
		}
	}
	m.pruneDismissed()
}

// pruneDismissed unmounts dismissed toasts.
func (m *Model) pruneDismissed() {
	live := m.toasts[:0]
	for _, e := range m.toasts {
		if !e.model.Dismissed() {
			live = append(live, e)
		}
	}
	m.toasts = live
}

// reloadConfig re-reads the config file and re-derives theme and
// styles in place. Failures surface as an error toast.
func (m Model) reloadConfig(path string) (tea.Model, tea.Cmd) {
	next := m.waitForConfigChange()

	cfg, err := config.Load(path)
	if err != nil {
		m.logger.Warn("config reload failed", "error", err)
		model, cmd := m.showToast(types.Toast{
			Text:     "Failed to reload config: " + err.Error(),
			Severity: types.SeverityError,
		})
		return model, tea.Batch(cmd, next)
	}

	m.cfg = cfg
	m.theme = styles.ThemeByName(cfg.Theme)
	m.styles = styles.New(m.theme)
	m.sidebar.SetStyles(styles.New(styles.ComposeSidebarTheme(m.theme)))
	for i := range m.toasts {
		m.toasts[i].model.SetStyles(m.styles)
		m.toasts[i].model.SetMaxLines(cfg.Toast.MaxLines)
	}
	m.applySizes()
	m.logger.Info("config reloaded", "theme", m.theme.Name)

	return m, next
}

// applySizes propagates the window size to every component and
// re-measures mounted toasts.
func (m *Model) applySizes() {
	m.sidebar.SetSize(m.cfg.Sidebar.Width, m.contentHeight())
	for i := range m.toasts {
		m.toasts[i].model.SetWidth(m.toastContentWidth())
	}
}

// toastContentWidth returns the wrap width for toast text: a third of
// the window, capped by config, minus the toast frame.
func (m Model) toastContentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width / 3
	if w > m.cfg.Toast.MaxWidth {
		w = m.cfg.Toast.MaxWidth
	}
	w -= m.styles.ToastDefault.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	return w
}

// contentHeight is the window height minus the status bar row.
func (m Model) contentHeight() int {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	return h
}

// waitForConfigChange blocks on the watcher and converts its next
// event into a message. Returns nil when no watcher is attached.
func (m Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return types.ConfigFileChangedMsg{Path: path}
	}
}
