package headers

// ChangeKind identifies the operation that produced a change.
type ChangeKind uint8

const (
	ChangeField ChangeKind = iota
	ChangeKey
	ChangeKeyInput
	ChangeSelectSuggestion
	ChangeDelete
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeField:
		return "field"
	case ChangeKey:
		return "key"
	case ChangeKeyInput:
		return "key-input"
	case ChangeSelectSuggestion:
		return "select-suggestion"
	case ChangeDelete:
		return "delete"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// ChangeEvent is emitted after every content mutation.
//
// Value is the complete list at dispatch time, detached from the List.
type ChangeEvent struct {
	Kind ChangeKind
	// Row is the position the operation addressed, or -1 for undo and redo.
	Row           int
	VersionBefore uint64
	VersionAfter  uint64
	Value         []Row
}

// LastChange returns the most recent change event.
func (l *List) LastChange() (ChangeEvent, bool) {
	if !l.hasLastChange {
		return ChangeEvent{}, false
	}
	return cloneChange(l.lastChange), true
}

func cloneChange(in ChangeEvent) ChangeEvent {
	out := in
	out.Value = cloneRows(in.Value)
	return out
}

// commit installs next as the current rows and notifies the host.
func (l *List) commit(kind ChangeKind, row int, next []Row) {
	ev := ChangeEvent{
		Kind:          kind,
		Row:           row,
		VersionBefore: l.version,
	}
	l.rows = next
	l.version++
	ev.VersionAfter = l.version
	ev.Value = cloneRows(l.rows)

	l.lastChange = ev
	l.hasLastChange = true
	if l.opt.OnChange != nil {
		l.opt.OnChange(cloneChange(ev))
	}
}
