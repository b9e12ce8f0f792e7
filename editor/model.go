package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/headeredit/headers"
	graphemeutil "github.com/iw2rmb/headeredit/internal/grapheme"
)

// Column identifies a cell within a row.
type Column uint8

const (
	ColumnChecked Column = iota
	ColumnKey
	ColumnValue
)

// Cursor is the focused cell. Caret counts grapheme clusters into the key or
// value text and is zero on the checked column.
type Cursor struct {
	Row    int
	Column Column
	Caret  int
}

// Model is a Bubble Tea component that renders and edits a headers.List.
type Model struct {
	cfg  Config
	list *headers.List

	focused bool

	viewport viewport.Model

	cursor Cursor
	// keyDirty is set while the focused key cell has uncommitted typing.
	keyDirty   bool
	suggestion int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		list: headers.New(cfg.Headers, headers.Options{
			Catalog:      cfg.Catalog,
			HistoryLimit: cfg.HistoryLimit,
			OnChange:     cfg.OnChange,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
		cursor:   Cursor{Column: ColumnKey},
	}
	m.clampCursor()
	m.rebuildContent()
	return m
}

// List returns the backing list. Hosts may call its operations directly;
// the next Update re-syncs the view.
func (m Model) List() *headers.List { return m.list }

// Headers returns a copy of the current rows.
func (m Model) Headers() []headers.Row { return m.list.Rows() }

// SetHeaders replaces the list content, as on host reset.
func (m Model) SetHeaders(rows []headers.Row) Model {
	m.list.SetHeaders(rows)
	m.keyDirty = false
	m.suggestion = 0
	m.clampCursor()
	m.rebuildContent()
	return m
}

func (m Model) Cursor() Cursor { return m.cursor }

// SetCursor moves focus to c, committing a pending key edit first.
func (m Model) SetCursor(c Cursor) Model {
	m.commitKey()
	m.cursor = c
	m.clampCursor()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

// Blur removes focus and commits a pending key edit.
func (m Model) Blur() Model {
	if m.focused {
		m.commitKey()
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.clampCursor()
		m.rebuildContent()
		m.followCursor()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		// Hosts may mutate the list directly between messages.
		m.clampCursor()
		m.rebuildContent()
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.suggestionPopupRender(base); ok {
		return popup.View
	}
	return base
}

// commitKey turns pending key typing into a committed SetKey and closes the
// row's popup.
func (m *Model) commitKey() {
	if !m.keyDirty {
		return
	}
	m.keyDirty = false
	row, ok := m.list.Row(m.cursor.Row)
	if !ok {
		return
	}
	m.list.SetKey(m.cursor.Row, row.Key)
	m.list.HideSuggestions(m.cursor.Row)
	m.suggestion = 0
}

func (m *Model) clampCursor() {
	n := m.list.Len()
	m.cursor.Row = clampInt(m.cursor.Row, 0, n-1)
	if m.cursor.Column > ColumnValue {
		m.cursor.Column = ColumnValue
	}
	if m.cursor.Column == ColumnChecked {
		m.cursor.Caret = 0
		return
	}
	m.cursor.Caret = clampInt(m.cursor.Caret, 0, graphemeutil.Count(m.cellText()))
}

func (m *Model) cellText() string {
	row, ok := m.list.Row(m.cursor.Row)
	if !ok {
		return ""
	}
	switch m.cursor.Column {
	case ColumnKey:
		return row.Key
	case ColumnValue:
		return row.Value
	default:
		return ""
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.cursor.Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
