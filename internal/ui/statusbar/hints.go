package statusbar

// GetHints returns the keybinding hints for the current shell state.
func GetHints(toastVisible, toastOverflowing bool) string {
	switch {
	case toastVisible && toastOverflowing:
		return "enter: view more/less  x: close  s: sidebar  q: quit"
	case toastVisible:
		return "x: close  s: sidebar  q: quit"
	default:
		return "t: test toast  s: sidebar  q: quit"
	}
}
