package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/headeredit/headers"
)

// loadRows reads a YAML list of {key, value, checked}. An empty path yields
// no rows.
func loadRows(path string) ([]headers.Row, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read headers %s: %w", path, err)
	}
	var rows []headers.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse headers %s: %w", path, err)
	}
	return rows, nil
}

// importHTTPRows reads a raw "Key: Value" header block, as copied from a
// browser or curl -v, ending at a blank line or EOF.
func importHTTPRows(path string) ([]headers.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read headers %s: %w", path, err)
	}
	defer f.Close()

	mh, err := textproto.NewReader(bufio.NewReader(f)).ReadMIMEHeader()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse headers %s: %w", path, err)
	}
	return headers.RowsFromHTTPHeader(http.Header(mh)), nil
}

// contentRows drops empty rows, including the editor's template row.
func contentRows(rows []headers.Row) []headers.Row {
	out := make([]headers.Row, 0, len(rows))
	for _, r := range rows {
		if headers.IsEmpty(r) {
			continue
		}
		out = append(out, headers.Row{Key: r.Key, Value: r.Value, Checked: r.Checked})
	}
	return out
}

func writeRows(w io.Writer, rows []headers.Row, format string) error {
	switch format {
	case "http":
		return headers.New(rows, headers.Options{}).HTTPHeader().Write(w)
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(contentRows(rows)); err != nil {
			return fmt.Errorf("encode headers: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode headers: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
}

// saveRows writes rows to path, or to stdout when path is empty.
func saveRows(stdout io.Writer, path string, rows []headers.Row, format string) error {
	if path == "" {
		return writeRows(stdout, rows, format)
	}
	var buf bytes.Buffer
	if err := writeRows(&buf, rows, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write headers %s: %w", path, err)
	}
	return nil
}
