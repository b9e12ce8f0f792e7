package headers

import (
	"net/http"
	"sort"
	"strings"
)

// HTTPHeader translates the active rows into request headers. Unchecked rows
// and rows without a key are skipped; repeated keys become multiple values in
// row order.
func (l *List) HTTPHeader() http.Header {
	h := make(http.Header)
	for _, r := range l.rows {
		if !r.Checked {
			continue
		}
		key := strings.TrimSpace(r.Key)
		if key == "" {
			continue
		}
		h.Add(key, r.Value)
	}
	return h
}

// RowsFromHTTPHeader builds checked rows from h, one row per value, sorted by
// canonical key.
func RowsFromHTTPHeader(h http.Header) []Row {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Row
	for _, k := range keys {
		for _, v := range h[k] {
			out = append(out, Row{Key: k, Value: v, Checked: true})
		}
	}
	return out
}
