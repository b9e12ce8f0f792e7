package headers

// All mutations below are no-ops returning false when row is out of range.

// SetField applies a value or checked edit to row.
func (l *List) SetField(row int, edit FieldEdit) bool {
	if edit == nil {
		return false
	}
	return l.updateRow(row, ChangeField, edit.apply)
}

// SetKey commits a key, as on blur or explicit confirmation.
func (l *List) SetKey(row int, key string) bool {
	return l.updateRow(row, ChangeKey, func(r *Row) {
		r.Key = key
	})
}

// KeyInput updates the key while it is being typed and refreshes the row's
// suggestions.
func (l *List) KeyInput(row int, key string) bool {
	return l.updateRow(row, ChangeKeyInput, func(r *Row) {
		r.Key = key
		r.Suggestions = FilterSuggestions(l.catalog, key)
		r.ShowSuggestions = len(r.Suggestions) > 0
	})
}

// SelectSuggestion sets the key to value and closes the suggestion popup.
func (l *List) SelectSuggestion(row int, value string) bool {
	return l.updateRow(row, ChangeSelectSuggestion, func(r *Row) {
		r.Key = value
		r.ShowSuggestions = false
	})
}

// HideSuggestions closes the suggestion popup of row. It changes UI state
// only: no event is emitted and the version is unchanged.
func (l *List) HideSuggestions(row int) bool {
	if !l.inRange(row) {
		return false
	}
	if !l.rows[row].ShowSuggestions {
		return true
	}
	next := make([]Row, len(l.rows))
	copy(next, l.rows)
	next[row].ShowSuggestions = false
	l.rows = next
	return true
}

// DeleteRow removes row unconditionally; callers gate on CanDelete. A new
// template row is appended when the removal leaves none.
func (l *List) DeleteRow(row int) bool {
	if !l.inRange(row) {
		return false
	}
	prev := l.snapshot()

	next := make([]Row, 0, len(l.rows))
	next = append(next, l.rows[:row]...)
	next = append(next, l.rows[row+1:]...)
	next = ensureTemplateRow(next)

	l.record(prev, next)
	l.commit(ChangeDelete, row, next)
	return true
}

func (l *List) updateRow(row int, kind ChangeKind, fn func(*Row)) bool {
	if !l.inRange(row) {
		return false
	}
	prev := l.snapshot()

	next := make([]Row, len(l.rows))
	copy(next, l.rows)
	r := cloneRow(next[row])
	fn(&r)
	next[row] = r
	next = ensureTemplateRow(next)

	l.record(prev, next)
	l.commit(kind, row, next)
	return true
}

func (l *List) record(prev, next []Row) {
	if sameContent(prev, next) {
		return
	}
	l.recordUndo(prev)
}
