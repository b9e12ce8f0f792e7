package headers

// Row is one header line.
//
// Suggestions and ShowSuggestions are transient UI state and are never
// serialized.
type Row struct {
	Key     string `yaml:"key" json:"key"`
	Value   string `yaml:"value" json:"value"`
	Checked bool   `yaml:"checked" json:"checked"`

	Suggestions     []Suggestion `yaml:"-" json:"-"`
	ShowSuggestions bool         `yaml:"-" json:"-"`
}

// Suggestion is a well-known header name offered while typing a key.
type Suggestion struct {
	Label string
	Value string
}

// ViewRow is the derived display record for one row.
type ViewRow struct {
	Row
	Index         int
	DeleteEnabled bool
}

// Field identifies an editable non-key column.
type Field uint8

const (
	FieldValue Field = iota
	FieldChecked
)

func (f Field) String() string {
	switch f {
	case FieldValue:
		return "value"
	case FieldChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// FieldEdit is a typed update for one non-key column. It is implemented by
// ValueEdit and CheckedEdit only.
type FieldEdit interface {
	Field() Field
	apply(*Row)
}

// ValueEdit replaces a row's value.
type ValueEdit struct {
	Value string
}

func (ValueEdit) Field() Field { return FieldValue }

func (e ValueEdit) apply(r *Row) { r.Value = e.Value }

// CheckedEdit toggles whether a row is active.
type CheckedEdit struct {
	Checked bool
}

func (CheckedEdit) Field() Field { return FieldChecked }

func (e CheckedEdit) apply(r *Row) { r.Checked = e.Checked }

// IsEmpty reports whether r has neither key nor value.
func IsEmpty(r Row) bool {
	return r.Key == "" && r.Value == ""
}

func templateRow() Row {
	return Row{Checked: true}
}

func cloneRow(r Row) Row {
	r.Suggestions = cloneSuggestions(r.Suggestions)
	return r
}

func cloneRows(in []Row) []Row {
	if len(in) == 0 {
		return nil
	}
	out := make([]Row, len(in))
	for i := range in {
		out[i] = cloneRow(in[i])
	}
	return out
}

func cloneSuggestions(in []Suggestion) []Suggestion {
	if len(in) == 0 {
		return nil
	}
	out := make([]Suggestion, len(in))
	copy(out, in)
	return out
}
