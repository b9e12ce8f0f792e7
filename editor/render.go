package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/headeredit/headers"
	graphemeutil "github.com/iw2rmb/headeredit/internal/grapheme"
)

const (
	markerWidth   = 2 // "> "
	checkboxWidth = 4 // "[x] "
	deleteWidth   = 2 // " ✕"
	// Keeps ambiguous-width glyphs from wrapping the line.
	rightMargin = 1
)

func (m *Model) renderContent() string {
	if m.list == nil {
		return ""
	}

	valueWidth := m.valueWidth()
	view := m.list.View()
	out := make([]string, 0, len(view))
	for _, vr := range view {
		out = append(out, m.renderRow(vr, valueWidth))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(vr headers.ViewRow, valueWidth int) string {
	st := m.cfg.Style
	isCursorRow := m.focused && vr.Index == m.cursor.Row
	isTemplate := !vr.DeleteEnabled

	var sb strings.Builder

	if isCursorRow {
		sb.WriteString(st.Marker.Render("> "))
	} else {
		sb.WriteString("  ")
	}

	box := "[ ]"
	if vr.Checked {
		box = "[x]"
	}
	if isCursorRow && m.cursor.Column == ColumnChecked {
		sb.WriteString(st.Cursor.Render(box))
	} else {
		sb.WriteString(st.Checkbox.Render(box))
	}
	sb.WriteByte(' ')

	keyStyle, valueStyle := st.Key, st.Value
	if !vr.Checked && !isTemplate {
		keyStyle, valueStyle = st.Inactive, st.Inactive
	}

	keyPlaceholder, valuePlaceholder := "", ""
	if isTemplate {
		keyPlaceholder, valuePlaceholder = m.cfg.KeyPlaceholder, m.cfg.ValuePlaceholder
	}

	sb.WriteString(m.renderCell(vr.Key, keyPlaceholder, m.cfg.KeyWidth, keyStyle, isCursorRow && m.cursor.Column == ColumnKey))
	sb.WriteByte(' ')
	sb.WriteString(m.renderCell(vr.Value, valuePlaceholder, valueWidth, valueStyle, isCursorRow && m.cursor.Column == ColumnValue))

	if vr.DeleteEnabled {
		sb.WriteString(st.Delete.Render(" ✕"))
	}
	return sb.String()
}

// renderCell renders text into exactly width cells. When focused the caret is
// drawn and the text scrolls horizontally to keep it visible.
func (m *Model) renderCell(text, placeholder string, width int, style lipgloss.Style, focused bool) string {
	if width <= 0 {
		return ""
	}
	st := m.cfg.Style

	if !focused {
		if text == "" && placeholder != "" {
			return st.Placeholder.Render(truncateCells(placeholder, width))
		}
		return style.Render(truncateCells(text, width))
	}

	clusters := graphemeutil.Split(text)
	caret := clampInt(m.cursor.Caret, 0, len(clusters))

	// Scroll so the caret cell fits: drop clusters from the left until the
	// text up to and including the caret fits in width.
	start := 0
	for start < caret {
		used := 1
		for _, gr := range clusters[start:caret] {
			used += graphemeCellWidth(gr)
		}
		if used <= width {
			break
		}
		start++
	}

	var sb strings.Builder
	used := 0
	for i := start; i < len(clusters); i++ {
		w := maxInt(graphemeCellWidth(clusters[i]), 1)
		if used+w > width {
			break
		}
		if i == caret {
			sb.WriteString(st.Cursor.Render(clusters[i]))
		} else {
			sb.WriteString(style.Render(clusters[i]))
		}
		used += w
	}
	if caret == len(clusters) && used < width {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}
	if used < width {
		sb.WriteString(strings.Repeat(" ", width-used))
	}
	return sb.String()
}

func (m *Model) keyColumnOffset() int {
	return markerWidth + checkboxWidth
}

func (m *Model) valueWidth() int {
	contentWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if contentWidth <= 0 {
		return defaultValueWidth
	}
	w := contentWidth - m.keyColumnOffset() - m.cfg.KeyWidth - 1 - deleteWidth - rightMargin
	return maxInt(w, 1)
}
