package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/headeredit/internal/grapheme"
)

func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func textCellWidth(text string) int {
	width := 0
	for _, gr := range graphemeutil.Split(text) {
		width += graphemeCellWidth(gr)
	}
	return width
}

// truncateCells cuts text to at most width cells and pads the remainder
// with spaces, so the result is always exactly width cells wide.
func truncateCells(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, gr := range graphemeutil.Split(text) {
		w := graphemeCellWidth(gr)
		if used+w > width {
			break
		}
		sb.WriteString(gr)
		used += w
	}
	if used < width {
		sb.WriteString(strings.Repeat(" ", width-used))
	}
	return sb.String()
}

// sanitizeCellText keeps cell text on a single line: newlines and tabs become
// spaces and other control runes are dropped.
func sanitizeCellText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
