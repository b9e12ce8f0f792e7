package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/headeredit/headers"
	graphemeutil "github.com/iw2rmb/headeredit/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.list == nil {
		return m, nil
	}

	km := m.cfg.KeyMap

	if suggestions, ok := m.openSuggestions(); ok {
		switch {
		case key.Matches(msg, km.NextSuggestion):
			m.suggestion = clampInt(m.suggestion+1, 0, len(suggestions)-1)
			return m, nil
		case key.Matches(msg, km.PrevSuggestion):
			m.suggestion = clampInt(m.suggestion-1, 0, len(suggestions)-1)
			return m, nil
		case key.Matches(msg, km.AcceptSuggestion):
			m.acceptSuggestion(suggestions)
			return m, nil
		case key.Matches(msg, km.DismissSuggestion):
			m.list.HideSuggestions(m.cursor.Row)
			m.suggestion = 0
			return m, nil
		}
	}

	// Paste events always insert literal text.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(sanitizeCellText(string(msg.Runes)))
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Up):
		m.moveRow(-1)
	case key.Matches(msg, km.Down):
		m.moveRow(1)
	case key.Matches(msg, km.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, km.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, km.Commit):
		if m.cursor.Column == ColumnValue {
			m.commitKey()
			m.setCursorCell(m.cursor.Row+1, ColumnKey)
		} else {
			m.moveColumn(1)
		}

	case key.Matches(msg, km.Left):
		m.cursor.Caret--
	case key.Matches(msg, km.Right):
		m.cursor.Caret++
	case key.Matches(msg, km.Home):
		m.cursor.Caret = 0
	case key.Matches(msg, km.End):
		m.cursor.Caret = graphemeutil.Count(m.cellText())

	case m.cursor.Column == ColumnChecked && key.Matches(msg, km.Toggle):
		if row, ok := m.list.Row(m.cursor.Row); ok {
			m.list.SetField(m.cursor.Row, headers.CheckedEdit{Checked: !row.Checked})
		}

	case key.Matches(msg, km.Backspace):
		if m.cursor.Caret > 0 {
			m.deleteRange(m.cursor.Caret-1, m.cursor.Caret)
		}
	case key.Matches(msg, km.Delete):
		m.deleteRange(m.cursor.Caret, m.cursor.Caret+1)
	case key.Matches(msg, km.DeleteWord):
		m.deleteRange(graphemeutil.PrevWordStart(m.cellText(), m.cursor.Caret), m.cursor.Caret)

	case key.Matches(msg, km.DeleteRow):
		if m.list.CanDelete(m.cursor.Row) {
			m.keyDirty = false
			m.suggestion = 0
			m.list.DeleteRow(m.cursor.Row)
		}

	case key.Matches(msg, km.Undo):
		m.keyDirty = false
		m.list.Undo()
	case key.Matches(msg, km.Redo):
		m.keyDirty = false
		m.list.Redo()

	default:
		switch msg.Type {
		case tea.KeySpace:
			m.insertText(" ")
		case tea.KeyRunes:
			if len(msg.Runes) > 0 && !msg.Alt {
				m.insertText(sanitizeCellText(string(msg.Runes)))
			}
		}
	}

	return m, nil
}

// SuggestionState describes the suggestion popup of the focused key cell.
type SuggestionState struct {
	Visible  bool
	Items    []headers.Suggestion
	Selected int
}

// SuggestionState returns the popup state. Items is a copy.
func (m Model) SuggestionState() SuggestionState {
	items, ok := m.openSuggestions()
	if !ok || !m.focused {
		return SuggestionState{}
	}
	return SuggestionState{
		Visible:  true,
		Items:    append([]headers.Suggestion(nil), items...),
		Selected: clampInt(m.suggestion, 0, len(items)-1),
	}
}

// openSuggestions returns the popup entries when the focused key cell has an
// open suggestion list.
func (m Model) openSuggestions() ([]headers.Suggestion, bool) {
	if m.cursor.Column != ColumnKey {
		return nil, false
	}
	row, ok := m.list.Row(m.cursor.Row)
	if !ok || !row.ShowSuggestions || len(row.Suggestions) == 0 {
		return nil, false
	}
	return row.Suggestions, true
}

func (m *Model) acceptSuggestion(suggestions []headers.Suggestion) {
	s := suggestions[clampInt(m.suggestion, 0, len(suggestions)-1)]
	m.list.SelectSuggestion(m.cursor.Row, s.Value)
	m.keyDirty = false
	m.suggestion = 0
	m.cursor.Caret = graphemeutil.Count(s.Value)
}

func (m *Model) moveRow(delta int) {
	m.setCursorCell(m.cursor.Row+delta, m.cursor.Column)
}

func (m *Model) moveColumn(delta int) {
	col := int(m.cursor.Column) + delta
	row := m.cursor.Row
	switch {
	case col > int(ColumnValue):
		col = int(ColumnChecked)
		row++
	case col < int(ColumnChecked):
		col = int(ColumnValue)
		row--
	}
	if row < 0 || row >= m.list.Len() {
		return
	}
	m.setCursorCell(row, Column(col))
}

// setCursorCell moves to the end of the text in (row, col), committing the
// key cell being left.
func (m *Model) setCursorCell(row int, col Column) {
	m.commitKey()
	m.cursor.Row = clampInt(row, 0, m.list.Len()-1)
	m.cursor.Column = col
	m.suggestion = 0
	m.cursor.Caret = graphemeutil.Count(m.cellText())
}

func (m *Model) insertText(s string) {
	if s == "" || m.cursor.Column == ColumnChecked {
		return
	}
	text, caret := graphemeutil.Insert(m.cellText(), m.cursor.Caret, s)
	m.setCellText(text, caret)
}

func (m *Model) deleteRange(start, end int) {
	if m.cursor.Column == ColumnChecked {
		return
	}
	text := m.cellText()
	next := graphemeutil.Delete(text, start, end)
	if next == text {
		return
	}
	m.setCellText(next, clampInt(start, 0, graphemeutil.Count(next)))
}

func (m *Model) setCellText(text string, caret int) {
	switch m.cursor.Column {
	case ColumnKey:
		m.list.KeyInput(m.cursor.Row, text)
		m.keyDirty = true
		m.suggestion = 0
	case ColumnValue:
		m.list.SetField(m.cursor.Row, headers.ValueEdit{Value: text})
	}
	m.cursor.Caret = caret
}
