package headers

// Options configures a List.
type Options struct {
	// Catalog replaces DefaultCatalog when non-empty.
	Catalog []Suggestion

	HistoryLimit int // default: 100, negative disables undo

	// OnChange is called synchronously after every content mutation.
	OnChange func(ChangeEvent)
}

// List is the header list state: ordered rows, a version counter, and undo
// history.
//
// Every mutation stores a freshly built slice; slices handed out by Rows,
// View, and change events are never written to again.
type List struct {
	rows    []Row
	version uint64

	catalog []Suggestion
	opt     Options
	hist    historyState

	lastChange    ChangeEvent
	hasLastChange bool
}

func New(rows []Row, opt Options) *List {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	catalog := opt.Catalog
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}
	l := &List{
		catalog: cloneSuggestions(catalog),
		opt:     opt,
	}
	l.rows = ensureTemplateRow(cloneRows(rows))
	return l
}

// SetHeaders replaces the whole list, as a host does on initial load or
// reset. It does not emit a change event and clears undo history.
func (l *List) SetHeaders(rows []Row) {
	l.rows = ensureTemplateRow(cloneRows(rows))
	l.hist = historyState{}
	l.version++
}

// Rows returns a copy of the current rows.
func (l *List) Rows() []Row { return cloneRows(l.rows) }

func (l *List) Len() int { return len(l.rows) }

func (l *List) Version() uint64 { return l.version }

// Row returns a copy of the row at i.
func (l *List) Row(i int) (Row, bool) {
	if !l.inRange(i) {
		return Row{}, false
	}
	return cloneRow(l.rows[i]), true
}

// Catalog returns a copy of the suggestion catalog in use.
func (l *List) Catalog() []Suggestion { return cloneSuggestions(l.catalog) }

// IsTemplateRow reports whether row i is the empty trailing add-slot.
func (l *List) IsTemplateRow(i int) bool {
	return i == len(l.rows)-1 && l.inRange(i) && IsEmpty(l.rows[i])
}

// CanDelete reports whether the delete control for row i is enabled.
func (l *List) CanDelete(i int) bool {
	return l.inRange(i) && !l.IsTemplateRow(i)
}

// View returns display records for every row. It is rebuilt on each call.
func (l *List) View() []ViewRow {
	out := make([]ViewRow, len(l.rows))
	for i := range l.rows {
		out[i] = ViewRow{
			Row:           cloneRow(l.rows[i]),
			Index:         i,
			DeleteEnabled: !l.IsTemplateRow(i),
		}
	}
	return out
}

func (l *List) inRange(i int) bool {
	return i >= 0 && i < len(l.rows)
}

// ensureTemplateRow makes rows end in exactly one empty row. A trailing run
// of empty rows collapses to its first element.
func ensureTemplateRow(rows []Row) []Row {
	n := len(rows)
	for n >= 2 && IsEmpty(rows[n-1]) && IsEmpty(rows[n-2]) {
		n--
	}
	rows = rows[:n]
	if n == 0 || !IsEmpty(rows[n-1]) {
		rows = append(rows, templateRow())
	}
	return rows
}
