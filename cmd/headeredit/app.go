package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/headeredit/editor"
	"github.com/iw2rmb/headeredit/headers"
)

const statusHeight = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type eventState struct {
	count int
	last  headers.ChangeEvent
}

func (s *eventState) handleChange(ev headers.ChangeEvent) {
	s.count++
	s.last = ev
}

type model struct {
	editor editor.Model
	events *eventState
}

func newModel(rows []headers.Row) model {
	state := &eventState{}
	cfg := editor.Config{
		Headers:  rows,
		Style:    editor.DefaultStyle(),
		OnChange: state.handleChange,
	}
	return model{editor: editor.New(cfg), events: state}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, maxInt(msg.Height-statusHeight, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			// Commit any key still being typed before the rows are saved.
			m.editor = m.editor.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	list := m.editor.List()
	last := "none"
	if m.events.count > 0 {
		last = m.events.last.Kind.String()
	}
	status := fmt.Sprintf("rows: %d  active headers: %d  version: %d  events: %d  last: %s",
		list.Len()-1, len(list.HTTPHeader()), list.Version(), m.events.count, last)
	help := "tab/shift+tab move • space toggle • ctrl+d delete • ctrl+z/ctrl+y undo/redo • ctrl+q quit"

	return m.editor.View() + "\n" + strings.Join([]string{
		statusStyle.Render(status),
		statusStyle.Render(help),
	}, "\n")
}

func (m model) rows() []headers.Row { return m.editor.Headers() }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
