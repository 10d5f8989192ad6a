package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	macchiatoBase     = lipgloss.Color("#24273a")
	macchiatoMantle   = lipgloss.Color("#1e2030")
	macchiatoSurface0 = lipgloss.Color("#363a4f")
	macchiatoSurface1 = lipgloss.Color("#494d64")
	macchiatoOverlay0 = lipgloss.Color("#6e738d")
	macchiatoSubtext0 = lipgloss.Color("#a5adcb")
	macchiatoText     = lipgloss.Color("#cad3f5")
	macchiatoBlue     = lipgloss.Color("#8aadf4")
	macchiatoGreen    = lipgloss.Color("#a6da95")
	macchiatoYellow   = lipgloss.Color("#eed49f")
	macchiatoRed      = lipgloss.Color("#ed8796")
	macchiatoLavender = lipgloss.Color("#b7bdf8")
)

// Catppuccin Latte palette
var (
	latteBase     = lipgloss.Color("#eff1f5")
	latteMantle   = lipgloss.Color("#e6e9ef")
	latteSurface0 = lipgloss.Color("#ccd0da")
	latteSurface1 = lipgloss.Color("#bcc0cc")
	latteOverlay0 = lipgloss.Color("#9ca0b0")
	latteSubtext0 = lipgloss.Color("#6c6f85")
	latteText     = lipgloss.Color("#4c4f69")
	latteBlue     = lipgloss.Color("#1e66f5")
	latteGreen    = lipgloss.Color("#40a02b")
	latteYellow   = lipgloss.Color("#df8e1d")
	latteRed      = lipgloss.Color("#d20f39")
	latteLavender = lipgloss.Color("#7287fd")
)

// Theme is an immutable set of resolved style tokens. Components read
// it; nothing mutates a Theme after construction. Region-specific
// variants are derived with ComposeSidebarTheme.
type Theme struct {
	Name string

	BackgroundColor          lipgloss.Color
	SecondaryBackgroundColor lipgloss.Color
	SurfaceColor             lipgloss.Color
	TextColor                lipgloss.Color
	SubtextColor             lipgloss.Color
	BorderColor              lipgloss.Color
	AccentColor              lipgloss.Color

	// Severity accents
	SuccessColor lipgloss.Color
	WarningColor lipgloss.Color
	ErrorColor   lipgloss.Color

	// InSidebar marks a theme derived for the sidebar region; layout
	// code uses it to offset the collapse chevron.
	InSidebar bool
}

// DarkTheme returns the Catppuccin Macchiato theme (the default).
func DarkTheme() Theme {
	return Theme{
		Name:                     "dark",
		BackgroundColor:          macchiatoBase,
		SecondaryBackgroundColor: macchiatoMantle,
		SurfaceColor:             macchiatoSurface0,
		TextColor:                macchiatoText,
		SubtextColor:             macchiatoSubtext0,
		BorderColor:              macchiatoSurface1,
		AccentColor:              macchiatoLavender,
		SuccessColor:             macchiatoGreen,
		WarningColor:             macchiatoYellow,
		ErrorColor:               macchiatoRed,
	}
}

// LightTheme returns the Catppuccin Latte theme.
func LightTheme() Theme {
	return Theme{
		Name:                     "light",
		BackgroundColor:          latteBase,
		SecondaryBackgroundColor: latteMantle,
		SurfaceColor:             latteSurface0,
		TextColor:                latteText,
		SubtextColor:             latteSubtext0,
		BorderColor:              latteSurface1,
		AccentColor:              latteLavender,
		SuccessColor:             latteGreen,
		WarningColor:             latteYellow,
		ErrorColor:               latteRed,
	}
}

// ThemeByName resolves a theme name from config. Unknown names fall
// back to the dark theme.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}
