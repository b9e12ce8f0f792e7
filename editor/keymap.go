package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Up, Down               key.Binding
	Left, Right            key.Binding
	Home, End              key.Binding
	NextColumn, PrevColumn key.Binding
	Commit                 key.Binding

	Backspace, Delete, DeleteWord key.Binding

	Toggle    key.Binding
	DeleteRow key.Binding

	Undo, Redo key.Binding

	// Active only while the suggestion popup is open.
	AcceptSuggestion  key.Binding
	DismissSuggestion key.Binding
	NextSuggestion    key.Binding
	PrevSuggestion    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous row")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next row")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "cell start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "cell end")),

		NextColumn: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next column")),
		PrevColumn: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous column")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit cell")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		// Terminals vary between alt+backspace and ctrl+w.
		DeleteWord: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word")),

		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle row")),
		DeleteRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete row")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		AcceptSuggestion:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "accept suggestion")),
		DismissSuggestion: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss suggestions")),
		NextSuggestion:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		PrevSuggestion:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous suggestion")),
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
