package headers

type historyState struct {
	undo [][]Row
	redo [][]Row
}

// snapshot captures the persisted content of the rows. Suggestion state is
// dropped so undo never reopens a popup.
func (l *List) snapshot() []Row {
	out := make([]Row, len(l.rows))
	for i, r := range l.rows {
		out[i] = Row{Key: r.Key, Value: r.Value, Checked: r.Checked}
	}
	return out
}

func (l *List) recordUndo(prev []Row) {
	limit := l.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	l.hist.undo = append(l.hist.undo, prev)
	if len(l.hist.undo) > limit {
		l.hist.undo = l.hist.undo[len(l.hist.undo)-limit:]
	}
	l.hist.redo = nil
}

func (l *List) CanUndo() bool { return len(l.hist.undo) > 0 }

func (l *List) CanRedo() bool { return len(l.hist.redo) > 0 }

func (l *List) Undo() bool {
	if len(l.hist.undo) == 0 {
		return false
	}

	cur := l.snapshot()
	i := len(l.hist.undo) - 1
	prev := l.hist.undo[i]
	l.hist.undo = l.hist.undo[:i]
	l.hist.redo = append(l.hist.redo, cur)

	l.commit(ChangeUndo, -1, ensureTemplateRow(cloneRows(prev)))
	return true
}

func (l *List) Redo() bool {
	if len(l.hist.redo) == 0 {
		return false
	}

	cur := l.snapshot()
	i := len(l.hist.redo) - 1
	next := l.hist.redo[i]
	l.hist.redo = l.hist.redo[:i]

	limit := l.opt.HistoryLimit
	if limit > 0 {
		l.hist.undo = append(l.hist.undo, cur)
		if len(l.hist.undo) > limit {
			l.hist.undo = l.hist.undo[len(l.hist.undo)-limit:]
		}
	}

	l.commit(ChangeRedo, -1, ensureTemplateRow(cloneRows(next)))
	return true
}

func sameContent(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || a[i].Value != b[i].Value || a[i].Checked != b[i].Checked {
			return false
		}
	}
	return true
}
