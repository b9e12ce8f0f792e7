package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/headeredit/headers"
)

func TestView_SnapshotBlurred(t *testing.T) {
	m := New(Config{
		Headers: []headers.Row{
			{Key: "Accept", Value: "*/*", Checked: true},
			{Key: "Debug", Value: "1"},
		},
		KeyWidth: 6,
	})
	m = m.Blur()
	m = m.SetSize(22, 3)

	want := []string{
		"  [x] Accept */*    ✕",
		"  [ ] Debug  1      ✕",
		"  [x] key    value",
	}
	assertLines(t, viewLines(m), want)
}

func TestView_TruncatesLongCells(t *testing.T) {
	m := New(Config{
		Headers:  []headers.Row{{Key: "Authorization", Value: "Bearer abcdefgh", Checked: true}},
		KeyWidth: 6,
	})
	m = m.Blur()
	m = m.SetSize(22, 2)

	got := viewLines(m)
	if got[0] != "  [x] Author Bearer ✕" {
		t.Fatalf("row 0: got %q", got[0])
	}
}

func TestView_MarkerOnCursorRowOnlyWhenFocused(t *testing.T) {
	m := New(Config{
		Headers:  []headers.Row{{Key: "Accept", Value: "*/*", Checked: true}},
		KeyWidth: 6,
	})
	m = m.SetSize(22, 2)

	got := viewLines(m)
	if !strings.HasPrefix(got[0], "> [x] Accept") {
		t.Fatalf("focused row 0: got %q", got[0])
	}
	if !strings.HasPrefix(got[1], "  [x] key") {
		t.Fatalf("row 1: got %q", got[1])
	}

	m = m.Blur()
	got = viewLines(m)
	if strings.HasPrefix(got[0], ">") {
		t.Fatalf("blurred row 0 should not carry the marker: %q", got[0])
	}
}

func TestView_CaretUsesCursorStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(Config{
		Headers:  []headers.Row{{Key: "Accept", Checked: true}},
		KeyWidth: 8,
		Style:    Style{Cursor: r.NewStyle().Reverse(true)},
	})
	m = m.SetSize(40, 2)

	if got := m.View(); !strings.Contains(got, "\x1b[7mA") {
		t.Fatalf("expected reversed caret on first key cluster, got %q", got)
	}

	m = press(m, tea.KeyEnd)
	if got := m.View(); !strings.Contains(got, "\x1b[7m \x1b[") {
		t.Fatalf("expected reversed caret cell at end of key, got %q", got)
	}
}

func TestView_ScrollsCellToKeepCaretVisible(t *testing.T) {
	m := New(Config{KeyWidth: 4})
	m = m.SetSize(30, 2)
	m = typeText(m, "abcdefgh")

	got := viewLines(m)
	// The caret sits after "h", so the cell shows the last three clusters and
	// the caret cell.
	if !strings.HasPrefix(got[0], "> [x] fgh ") {
		t.Fatalf("row 0: got %q", got[0])
	}
}

func TestView_InactiveStyleOnUncheckedRows(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(Config{
		Headers:  []headers.Row{{Key: "Off", Value: "v"}},
		KeyWidth: 4,
		Style:    Style{Inactive: r.NewStyle().Strikethrough(true)},
	})
	m = m.Blur()
	m = m.SetSize(30, 2)

	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "\x1b[9m") {
		t.Fatalf("unchecked row should be struck through: %q", lines[0])
	}
	if strings.Contains(lines[1], "\x1b[9m") {
		t.Fatalf("template row should not be struck through: %q", lines[1])
	}
}

func TestSanitizeCellText(t *testing.T) {
	if got, want := sanitizeCellText("a\nb\tc\x00d\x7f"), "a b cd"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
