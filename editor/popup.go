package editor

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/headeredit/headers"
)

type suggestionPopupRender struct {
	View string
}

// suggestionPopupRender composites the focused row's suggestion list over
// base, anchored under the key cell or above it when there is no room below.
func (m Model) suggestionPopupRender(base string) (suggestionPopupRender, bool) {
	if !m.focused || m.list == nil {
		return suggestionPopupRender{}, false
	}
	suggestions, ok := m.openSuggestions()
	if !ok {
		return suggestionPopupRender{}, false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return suggestionPopupRender{}, false
	}

	anchorY := m.cursor.Row - m.viewport.YOffset
	if anchorY < 0 || anchorY >= viewportHeight {
		return suggestionPopupRender{}, false
	}

	targetRows := minInt(m.cfg.MaxSuggestionRows, len(suggestions))
	belowAvail := maxInt(viewportHeight-(anchorY+1), 0)
	aboveAvail := maxInt(anchorY, 0)
	showBelow := true
	rowCount := targetRows
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return suggestionPopupRender{}, false
	}

	selected := clampInt(m.suggestion, 0, len(suggestions)-1)
	first := 0
	if selected >= rowCount {
		first = selected - rowCount + 1
	}
	window := suggestions[first : first+rowCount]

	widthCap := minInt(defaultSuggestionWidth, viewportWidth)
	popupWidth := 0
	for _, s := range window {
		if w := textCellWidth(sanitizeCellText(s.Label)); w > popupWidth {
			popupWidth = w
		}
	}
	popupWidth = minInt(popupWidth, widthCap)
	if popupWidth <= 0 {
		return suggestionPopupRender{}, false
	}

	rendered := make([]string, 0, len(window))
	for i, s := range window {
		rendered = append(rendered, m.renderSuggestionRow(s, first+i == selected, popupWidth))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	y = clampInt(y, 0, maxInt(viewportHeight-len(rendered), 0))
	x := clampInt(m.keyColumnOffset(), 0, maxInt(viewportWidth-popupWidth, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return suggestionPopupRender{
		View: overlay.Composite(
			strings.Join(rendered, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			leftFrame+x,
			topFrame+y,
		),
	}, true
}

func (m Model) renderSuggestionRow(s headers.Suggestion, selected bool, width int) string {
	style := m.cfg.Style.SuggestionItem
	if selected {
		style = m.cfg.Style.SuggestionSelected
	}
	return style.Render(truncateCells(sanitizeCellText(s.Label), width))
}
