package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains all the lipgloss styles used in the application,
// resolved from a single Theme.
type Styles struct {
	Theme Theme

	// App frame
	App      lipgloss.Style
	MainPane lipgloss.Style

	// Toasts
	ToastDefault lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Toast controls
	ToastControl lipgloss.Style
	ToastClose   lipgloss.Style

	// Sidebar
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarItem    lipgloss.Style
	SidebarChevron lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
}

// New creates a Styles instance resolved against the given theme.
func New(theme Theme) *Styles {
	toastBase := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Background(theme.SecondaryBackgroundColor).
		Foreground(theme.TextColor).
		Padding(0, 1)

	// The chevron sits one cell further in when the theme was composed
	// for the sidebar region, so it clears the swapped background edge.
	chevronOffset := 0
	if theme.InSidebar {
		chevronOffset = 1
	}

	return &Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(theme.BackgroundColor),

		MainPane: lipgloss.NewStyle().
			Foreground(theme.TextColor).
			Padding(0, 1),

		ToastDefault: toastBase.
			BorderForeground(theme.BorderColor),

		ToastSuccess: toastBase.
			BorderForeground(theme.SuccessColor),

		ToastWarning: toastBase.
			BorderForeground(theme.WarningColor),

		ToastError: toastBase.
			BorderForeground(theme.ErrorColor),

		ToastControl: lipgloss.NewStyle().
			Foreground(theme.AccentColor).
			Underline(true),

		ToastClose: lipgloss.NewStyle().
			Foreground(theme.SubtextColor),

		Sidebar: lipgloss.NewStyle().
			Background(theme.BackgroundColor).
			Foreground(theme.TextColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.BorderColor).
			Padding(0, 1),

		SidebarTitle: lipgloss.NewStyle().
			Foreground(theme.AccentColor).
			Bold(true).
			MarginBottom(1),

		SidebarItem: lipgloss.NewStyle().
			Foreground(theme.SubtextColor),

		SidebarChevron: lipgloss.NewStyle().
			Foreground(theme.SubtextColor).
			MarginLeft(chevronOffset),

		StatusBar: lipgloss.NewStyle().
			Background(theme.SecondaryBackgroundColor).
			Foreground(theme.SubtextColor),

		StatusMode: lipgloss.NewStyle().
			Background(theme.AccentColor).
			Foreground(theme.BackgroundColor).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(theme.SubtextColor),
	}
}
