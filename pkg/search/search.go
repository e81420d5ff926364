// File: pkg/search/search.go
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchSet holds matched lines in file order. Each entry is a slice of the
// searched contents, not a copy.
type MatchSet []string

// Lines yields every line of contents. Lines end at "\n" or "\r\n" and the
// terminator is not part of the line. A final unterminated segment is a line
// when non-empty, so empty contents yield nothing.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := contents
		for len(rest) > 0 {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
				line = strings.TrimSuffix(line, "\r")
			} else {
				rest = ""
			}
			if !yield(line) {
				return
			}
		}
	}
}

// CountLines returns the number of lines Lines would yield.
func CountLines(contents string) int {
	n := 0
	for range Lines(contents) {
		n++
	}
	return n
}

// Search returns the lines of contents that contain query exactly.
func Search(query, contents string) MatchSet {
	var results MatchSet
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive returns the lines of contents whose lower-cased form
// contains the lower-cased query. The original line text is kept.
func SearchCaseInsensitive(query, contents string) MatchSet {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results MatchSet
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}
