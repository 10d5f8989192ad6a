package styles

// ComposeSidebarTheme derives the sidebar's theme from the ambient
// theme: the background and secondary background tokens swap and the
// InSidebar flag is set. Every other token is inherited unchanged and
// the parent is never mutated, so the composer is safe to call on
// every render.
func ComposeSidebarTheme(parent Theme) Theme {
	derived := parent
	derived.BackgroundColor = parent.SecondaryBackgroundColor
	derived.SecondaryBackgroundColor = parent.BackgroundColor
	derived.InSidebar = true
	return derived
}
