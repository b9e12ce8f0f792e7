package headers

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPHeader_ActiveRowsOnly(t *testing.T) {
	l := New([]Row{
		{Key: "content-type", Value: "application/json", Checked: true},
		{Key: "X-Off", Value: "1", Checked: false},
		{Key: "  ", Value: "orphan", Checked: true},
		{Key: "Accept", Value: "a", Checked: true},
		{Key: "accept", Value: "b", Checked: true},
	}, Options{})

	got := l.HTTPHeader()
	want := http.Header{
		"Content-Type": {"application/json"},
		"Accept":       {"a", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsFromHTTPHeader_SortedOneRowPerValue(t *testing.T) {
	got := RowsFromHTTPHeader(http.Header{
		"B": {"2"},
		"A": {"1", "3"},
	})
	want := []Row{
		{Key: "A", Value: "1", Checked: true},
		{Key: "A", Value: "3", Checked: true},
		{Key: "B", Value: "2", Checked: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
