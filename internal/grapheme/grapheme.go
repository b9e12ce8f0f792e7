// Package grapheme provides grapheme-cluster text helpers for cell editing.
//
// Offsets are 0-based and counted in grapheme clusters.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	clusters := Split(text)
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	return strings.Join(clusters[start:end], "")
}

// Insert inserts s before the cluster at offset at and returns the new text
// and the offset just past the inserted clusters.
func Insert(text string, at int, s string) (string, int) {
	clusters := Split(text)
	at = clamp(at, 0, len(clusters))
	if s == "" {
		return text, at
	}
	out := strings.Join(clusters[:at], "") + s + strings.Join(clusters[at:], "")
	// Inserted text may merge with its neighbours into fewer clusters.
	next := Count(out) - (len(clusters) - at)
	return out, clamp(next, 0, Count(out))
}

// Delete removes the clusters in [start, end).
func Delete(text string, start, end int) string {
	clusters := Split(text)
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	if start == end {
		return text
	}
	return strings.Join(clusters[:start], "") + strings.Join(clusters[end:], "")
}

// PrevWordStart returns the offset where the word before at begins. Leading
// spaces are skipped first, then a run of word or punctuation clusters.
func PrevWordStart(text string, at int) int {
	clusters := Split(text)
	i := clamp(at, 0, len(clusters))
	for i > 0 && IsSpace(clusters[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}
	punct := IsPunct(clusters[i-1])
	for i > 0 && !IsSpace(clusters[i-1]) && IsPunct(clusters[i-1]) == punct {
		i--
	}
	return i
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are punctuation or symbols.
// Header names split words on '-', so it counts as punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
