package toast

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapToWidth wraps text at word boundaries, hard-breaking words wider
// than the limit. Cell widths (emoji, CJK) are respected, so the line
// count reflects what the terminal will actually show.
func wrapToWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}

// clampLines returns the first n lines of s. The result is a strict
// prefix of s whenever clamping occurs.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// contentWidth returns the cell width of the widest line.
func contentWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
